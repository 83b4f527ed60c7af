package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"social-system/config"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

// JWTService 提供 JWT 签发与校验能力
// 使用对称密钥 HS256，密钥来自配置，启动后不可变
// expireAfter 为 0 时不写入 exp，令牌永不过期

type JWTService struct {
	secretKey   []byte        // 对称密钥
	issuer      string        // 签发者
	expireAfter time.Duration // 过期时间
	now         func() time.Time
}

// Identity 令牌中携带的已校验身份
type Identity struct {
	UserID   uint
	Username string
}

// Claims 自定义声明载荷
type Claims struct {
	UserID   uint   `json:"uid"`
	Username string `json:"username"`
	jwtv5.RegisteredClaims
}

// NewJWTService 创建 JWT 服务
func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{
		secretKey:   []byte(cfg.Secret),
		issuer:      cfg.Issuer,
		expireAfter: cfg.ExpireTime,
		now:         time.Now,
	}
}

// Issue 签发访问令牌，userID 同时写入 Subject
func (s *JWTService) Issue(userID uint, username string) (string, error) {
	if userID == 0 {
		return "", errors.New("userID is required")
	}

	now := s.now()
	claims := &Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwtv5.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwtv5.NewNumericDate(now),
			NotBefore: jwtv5.NewNumericDate(now),
		},
	}
	if s.expireAfter > 0 {
		claims.ExpiresAt = jwtv5.NewNumericDate(now.Add(s.expireAfter))
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token failed: %w", err)
	}
	return signed, nil
}

// Verify 校验并解析令牌，返回身份信息
func (s *JWTService) Verify(tokenString string) (*Identity, error) {
	if tokenString == "" {
		return nil, errors.New("token is empty")
	}

	opts := []jwtv5.ParserOption{
		jwtv5.WithValidMethods([]string{jwtv5.SigningMethodHS256.Alg()}),
		jwtv5.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwtv5.WithIssuer(s.issuer))
	}
	if s.expireAfter > 0 {
		opts = append(opts, jwtv5.WithExpirationRequired())
	}

	claims := &Claims{}
	parsedToken, err := jwtv5.ParseWithClaims(tokenString, claims, func(token *jwtv5.Token) (interface{}, error) {
		return s.secretKey, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse token failed: %w", err)
	}
	if !parsedToken.Valid {
		return nil, errors.New("invalid token")
	}

	// uid 与 sub 必须一致
	if claims.UserID == 0 || claims.Subject != strconv.FormatUint(uint64(claims.UserID), 10) {
		return nil, errors.New("invalid token subject")
	}

	return &Identity{UserID: claims.UserID, Username: claims.Username}, nil
}
