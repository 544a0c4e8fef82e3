package jwt

import "testing"

func TestAccessTokenRoundTrip(t *testing.T) {
	Init("test-secret", 15)
	token, err := GenerateAccessToken("user-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "user-1" || claims.Subject != "access_token" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestParseTokenRejectsOtherSecret(t *testing.T) {
	Init("secret-a", 15)
	token, err := GenerateAccessToken("user-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	Init("secret-b", 15)
	if _, err := ParseToken(token); err == nil {
		t.Fatal("token signed with another secret must be rejected")
	}
}
