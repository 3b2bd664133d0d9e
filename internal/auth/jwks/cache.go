package jwks

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

const fetchTimeout = 10 * time.Second

// Cache holds the issuer's public signing keys, indexed by key ID. The key
// set is fetched lazily and refetched once when a token references an unknown
// kid: keys rotate rarely, so a miss simply triggers a refresh and there is no
// other invalidation.
type Cache struct {
	url    string
	client *http.Client
	log    zerolog.Logger

	mu   sync.RWMutex
	keys map[string]*rsa.PublicKey
}

// NewCache creates a Cache for the given JWKS endpoint URL.
func NewCache(url string, log zerolog.Logger) *Cache {
	return &Cache{
		url:    url,
		client: &http.Client{Timeout: fetchTimeout},
		log:    log,
		keys:   make(map[string]*rsa.PublicKey),
	}
}

// Keyfunc satisfies jwt.Keyfunc. Only RS256 tokens are accepted.
func (c *Cache) Keyfunc(token *jwt.Token) (interface{}, error) {
	if token.Method.Alg() != jwt.SigningMethodRS256.Alg() {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	kid, _ := token.Header["kid"].(string)
	if kid == "" {
		return nil, fmt.Errorf("token missing kid header")
	}

	if key, ok := c.lookup(kid); ok {
		return key, nil
	}

	if err := c.refresh(context.Background()); err != nil {
		return nil, fmt.Errorf("refresh key set: %w", err)
	}
	if key, ok := c.lookup(kid); ok {
		return key, nil
	}
	return nil, fmt.Errorf("no signing key for kid %q", kid)
}

func (c *Cache) lookup(kid string) (*rsa.PublicKey, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	key, ok := c.keys[kid]
	return key, ok
}

type jwksDocument struct {
	Keys []jwksKey `json:"keys"`
}

type jwksKey struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	N   string `json:"n"`
	E   string `json:"e"`
}

func (c *Cache) refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return err
	}
	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("jwks endpoint returned %d", res.StatusCode)
	}

	var doc jwksDocument
	if err := json.NewDecoder(res.Body).Decode(&doc); err != nil {
		return fmt.Errorf("decode key set: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, k := range doc.Keys {
		if k.Kty != "RSA" || k.Kid == "" {
			continue
		}
		pub, err := k.publicKey()
		if err != nil {
			c.log.Warn().Err(err).Str("kid", k.Kid).Msg("skipping unparsable signing key")
			continue
		}
		keys[k.Kid] = pub
	}

	c.mu.Lock()
	c.keys = keys
	c.mu.Unlock()

	c.log.Debug().Int("keys", len(keys)).Msg("signing key set refreshed")
	return nil
}

func (k jwksKey) publicKey() (*rsa.PublicKey, error) {
	nb, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("modulus: %w", err)
	}
	eb, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("exponent: %w", err)
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nb),
		E: int(new(big.Int).SetBytes(eb).Int64()),
	}, nil
}
