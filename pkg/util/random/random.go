package random

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"

	"github.com/google/uuid"
)

// 实体 ID 前缀
const (
	PrefixCommunity = "com"
	PrefixChannel   = "ch"
	PrefixMessage   = "msg"
	PrefixReaction  = "rct"
	PrefixMember    = "mem"
	PrefixRole      = "role"
	PrefixInvite    = "inv"
)

const codeCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewID 生成带类型前缀的实体 ID
// 格式: prefix-<32位十六进制>，例如 com-1f0c9a...
func NewID(prefix string) string {
	id := uuid.New()
	return prefix + "-" + hex.EncodeToString(id[:])
}

// InviteCode 生成指定长度的邀请码（字母数字混合）
// 邀请码与 Invite.ID 相互独立，用于分享链接
func InviteCode(length int) string {
	result := make([]byte, length)
	charsetLen := big.NewInt(int64(len(codeCharset)))
	for i := range result {
		n, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			result[i] = 'x'
			continue
		}
		result[i] = codeCharset[n.Int64()]
	}
	return string(result)
}
