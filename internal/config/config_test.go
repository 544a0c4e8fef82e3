package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestApplyDefaults(t *testing.T) {
	c := new(Config)
	c.ApplyDefaults()
	if c.APIPrefix != "/api/chat" {
		t.Fatalf("APIPrefix = %q", c.APIPrefix)
	}
	if c.MessageMode != "channel" {
		t.Fatalf("MessageMode = %q", c.MessageMode)
	}
	if c.DefaultMessageLimit != 50 || c.MaxMessageLimit != 100 {
		t.Fatalf("limits = %d/%d", c.DefaultMessageLimit, c.MaxMessageLimit)
	}
	if c.BotTimeout != 5 {
		t.Fatalf("BotTimeout = %d", c.BotTimeout)
	}
}

func TestDecodeKeepsExplicitValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := "[chatConfig]\napiPrefix = \"/chat\"\nmaxMessageLimit = 20\n[kafkaConfig]\nmessageMode = \"kafka\"\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	c := new(Config)
	if _, err := toml.DecodeFile(path, c); err != nil {
		t.Fatalf("decode: %v", err)
	}
	c.ApplyDefaults()
	if c.APIPrefix != "/chat" || c.MaxMessageLimit != 20 || c.MessageMode != "kafka" {
		t.Fatalf("unexpected config %+v", c.ChatConfig)
	}
	if c.DefaultMessageLimit != 50 {
		t.Fatalf("DefaultMessageLimit = %d", c.DefaultMessageLimit)
	}
}

func TestSanitizeContentOffByDefault(t *testing.T) {
	c := new(Config)
	c.ApplyDefaults()
	if c.SanitizeContent {
		t.Fatal("SanitizeContent defaults to true")
	}

	shipped := new(Config)
	if _, err := toml.DecodeFile("../../configs/config.toml", shipped); err != nil {
		t.Fatalf("decode shipped config: %v", err)
	}
	if shipped.SanitizeContent {
		t.Fatal("shipped config enables sanitizeContent")
	}
}
