// Package media issues credentials for the external real-time media service.
// A credential is a signed, time-bounded token naming one channel and one
// numeric participant uid.
package media

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/immxrtalbeast/roomgate/internal/config"
	"github.com/pion/webrtc/v3"
)

type Role int

// RolePublisher lets the holder send media, which every participant does.
const RolePublisher Role = 1

var ErrInvalidCredential = errors.New("invalid media credential")

type Claims struct {
	jwt.RegisteredClaims
	AppID   string `json:"app_id"`
	Channel string `json:"channel"`
	UID     uint32 `json:"uid"`
	Role    Role   `json:"role"`
}

type Credential struct {
	Token      string             `json:"token"`
	UID        uint32             `json:"uid"`
	ExpiresAt  time.Time          `json:"expires_at"`
	ICEServers []webrtc.ICEServer `json:"ice_servers,omitempty"`
}

type Issuer struct {
	appID       string
	certificate []byte
	ttl         time.Duration
	iceServers  []webrtc.ICEServer
	now         func() time.Time
}

func NewIssuer(cfg config.MediaConfig) (*Issuer, error) {
	if cfg.AppID == "" {
		return nil, errors.New("media app id is empty")
	}
	if cfg.AppCertificate == "" {
		return nil, errors.New("media app certificate is empty")
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	ice := make([]webrtc.ICEServer, 0, len(cfg.STUNServers))
	for _, url := range cfg.STUNServers {
		ice = append(ice, webrtc.ICEServer{URLs: []string{url}})
	}

	return &Issuer{
		appID:       cfg.AppID,
		certificate: []byte(cfg.AppCertificate),
		ttl:         ttl,
		iceServers:  ice,
		now:         time.Now,
	}, nil
}

// NewUID picks a participant uid for the media session. Uids are positive and
// fit in an int32 because browser SDKs treat them as signed.
func (i *Issuer) NewUID() uint32 {
	return rand.Uint32N(math.MaxInt32) + 1
}

func (i *Issuer) Issue(channel string, uid uint32) (*Credential, error) {
	if channel == "" {
		return nil, errors.New("channel is required")
	}
	if uid == 0 {
		return nil, errors.New("uid is required")
	}

	now := i.now().UTC()
	expiresAt := now.Add(i.ttl)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.appID,
			Subject:   fmt.Sprintf("%d", uid),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		AppID:   i.appID,
		Channel: channel,
		UID:     uid,
		Role:    RolePublisher,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.certificate)
	if err != nil {
		return nil, fmt.Errorf("sign media credential: %w", err)
	}

	ice := make([]webrtc.ICEServer, len(i.iceServers))
	copy(ice, i.iceServers)

	return &Credential{
		Token:      token,
		UID:        uid,
		ExpiresAt:  expiresAt,
		ICEServers: ice,
	}, nil
}

// Verify checks a credential the way the media service does before it lets a
// stream into channel.
func (i *Issuer) Verify(token, channel string) (*Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.certificate, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	if claims.AppID != i.appID || claims.Channel != channel {
		return nil, fmt.Errorf("%w: wrong channel", ErrInvalidCredential)
	}
	return &claims, nil
}
