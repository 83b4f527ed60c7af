package password

import (
	"golang.org/x/crypto/bcrypt"
)

// MaxLength bcrypt 只接受不超过72字节的密码
const MaxLength = 72

// Hasher bcrypt 密码哈希，cost 由配置决定
// 明文密码只在内存中短暂存在，不落库、不打印
type Hasher struct {
	cost int
}

// NewHasher 创建哈希器，cost 非法时回退到 bcrypt.DefaultCost
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash 生成密码哈希（自带随机盐）
func (h *Hasher) Hash(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify 校验密码
func (h *Hasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
