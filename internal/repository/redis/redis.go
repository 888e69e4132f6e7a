package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenData is the session record stored per logged-in user.
type TokenData struct {
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
}

type TokenRepository struct {
	client *redis.Client
}

func NewTokenRepository(client *redis.Client) *TokenRepository {
	return &TokenRepository{
		client: client,
	}
}

func userKey(userID string) string  { return fmt.Sprintf("token:user:%s", userID) }
func lookupKey(token string) string { return fmt.Sprintf("token:lookup:%s", token) }

// StoreToken stores the session under the user id plus a reverse
// lookup token -> user id for quick validation. A new login replaces
// the previous session.
func (r *TokenRepository) StoreToken(ctx context.Context, userID, token, role, ipAddress, userAgent string, ttl time.Duration) error {
	now := time.Now()
	data := TokenData{
		UserID:    userID,
		Role:      role,
		Token:     token,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal token data: %w", err)
	}

	// drop the lookup key of a previous session so stale tokens die early
	if prev, err := r.GetTokenData(ctx, userID); err == nil && prev.Token != token {
		r.client.Del(ctx, lookupKey(prev.Token))
	}

	if err := r.client.Set(ctx, userKey(userID), jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store token in Redis: %w", err)
	}

	if err := r.client.Set(ctx, lookupKey(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store token lookup: %w", err)
	}

	return nil
}

// GetTokenData retrieve token data by user ID
func (r *TokenRepository) GetTokenData(ctx context.Context, userID string) (*TokenData, error) {
	val, err := r.client.Get(ctx, userKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.New("token not found")
		}
		return nil, fmt.Errorf("failed to get token from Redis: %w", err)
	}

	var tokenData TokenData
	if err := json.Unmarshal([]byte(val), &tokenData); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token data: %w", err)
	}

	return &tokenData, nil
}

// ValidateToken checks if a token exists and is valid
func (r *TokenRepository) ValidateToken(ctx context.Context, token string) (string, error) {
	userID, err := r.client.Get(ctx, lookupKey(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", errors.New("token not found or expired")
		}
		return "", fmt.Errorf("failed to validate token: %w", err)
	}

	return userID, nil
}

// DeleteToken removes the session and its reverse lookup.
func (r *TokenRepository) DeleteToken(ctx context.Context, userID string) error {
	tokenData, err := r.GetTokenData(ctx, userID)
	if err != nil {
		return err
	}

	if err := r.client.Del(ctx, userKey(userID), lookupKey(tokenData.Token)).Err(); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}

	return nil
}

// RefreshTokenTTL extends the token expiration time
func (r *TokenRepository) RefreshTokenTTL(ctx context.Context, userID string, newTTL time.Duration) error {
	exists, err := r.client.Exists(ctx, userKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check token existence: %w", err)
	}
	if exists == 0 {
		return errors.New("token not found")
	}

	if err := r.client.Expire(ctx, userKey(userID), newTTL).Err(); err != nil {
		return fmt.Errorf("failed to refresh token TTL: %w", err)
	}

	tokenData, err := r.GetTokenData(ctx, userID)
	if err != nil {
		return err
	}

	if err := r.client.Expire(ctx, lookupKey(tokenData.Token), newTTL).Err(); err != nil {
		return fmt.Errorf("failed to refresh lookup TTL: %w", err)
	}

	return nil
}
