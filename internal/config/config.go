package config

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SherClockHolmes/webpush-go"
)

type Config struct {
	HTTPPort      string
	DatabasePath  string
	JWTSecret     string
	AdminEmail    string
	AdminPassword string
	VAPIDKeys     *VAPIDKeys
}

type VAPIDKeys struct {
	PublicKey  string
	PrivateKey string
	Subject    string
}

func Load() *Config {
	return &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		DatabasePath:  getEnv("DATABASE_PATH", "hackhub.db"),
		JWTSecret:     loadOrGenerateJWTSecret(),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@hackathon.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		VAPIDKeys:     loadVAPIDKeys(),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func generateRandomSecret() string {
	bytes := make([]byte, 32)
	rand.Read(bytes)
	return base64.URLEncoding.EncodeToString(bytes)
}

func loadOrGenerateJWTSecret() string {
	// Environment variable has highest priority
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return secret
	}

	keysDir := getKeysDirectory()
	secretFile := filepath.Join(keysDir, "jwt-secret.key")

	if secretData, err := os.ReadFile(secretFile); err == nil {
		secret := strings.TrimSpace(string(secretData))
		if secret != "" {
			return secret
		}
	}

	// Generate and persist so sessions survive restarts
	secret := generateRandomSecret()
	if err := os.MkdirAll(keysDir, 0700); err == nil {
		if err := os.WriteFile(secretFile, []byte(secret), 0600); err != nil {
			fmt.Printf("Warning: failed to save JWT secret to disk: %v\n", err)
		}
	}

	return secret
}

func loadVAPIDKeys() *VAPIDKeys {
	// Environment variables have highest priority
	publicKey := os.Getenv("VAPID_PUBLIC_KEY")
	privateKey := os.Getenv("VAPID_PRIVATE_KEY")

	if publicKey != "" && privateKey != "" {
		return &VAPIDKeys{
			PublicKey:  publicKey,
			PrivateKey: privateKey,
			Subject:    getEnv("VAPID_SUBJECT", "mailto:admin@hackathon.com"),
		}
	}

	keysDir := getKeysDirectory()
	publicKeyFile := filepath.Join(keysDir, "vapid-public.key")
	privateKeyFile := filepath.Join(keysDir, "vapid-private.key")

	if publicKeyData, err := os.ReadFile(publicKeyFile); err == nil {
		if privateKeyData, err := os.ReadFile(privateKeyFile); err == nil {
			return &VAPIDKeys{
				PublicKey:  strings.TrimSpace(string(publicKeyData)),
				PrivateKey: strings.TrimSpace(string(privateKeyData)),
				Subject:    getEnv("VAPID_SUBJECT", "mailto:admin@hackathon.com"),
			}
		}
	}

	privateKey, publicKey, err := webpush.GenerateVAPIDKeys()
	if err != nil {
		panic("failed to generate VAPID keys: " + err.Error())
	}

	if err := os.MkdirAll(keysDir, 0700); err == nil {
		if err := os.WriteFile(publicKeyFile, []byte(publicKey), 0600); err != nil {
			fmt.Printf("Warning: failed to save VAPID public key: %v\n", err)
		}
		if err := os.WriteFile(privateKeyFile, []byte(privateKey), 0600); err != nil {
			fmt.Printf("Warning: failed to save VAPID private key: %v\n", err)
		}
	}

	return &VAPIDKeys{
		PublicKey:  publicKey,
		PrivateKey: privateKey,
		Subject:    getEnv("VAPID_SUBJECT", "mailto:admin@hackathon.com"),
	}
}

func getKeysDirectory() string {
	execPath, err := os.Executable()
	if err != nil {
		return "keys"
	}
	return filepath.Join(filepath.Dir(execPath), "keys")
}
