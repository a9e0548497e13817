// Package crypto tests for the API key encryption.
package crypto

import (
	"testing"
)

// TestEncryptDecrypt_roundtrip verifies basic encryption and decryption.
func TestEncryptDecrypt_roundtrip(t *testing.T) {
	plaintext := []byte("sk-api-key-value")
	key := []byte("user passphrase")

	ciphertext, err := Encrypt(plaintext, key)
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	if ciphertext == "" {
		t.Error("Encrypt() returned empty string")
	}

	decrypted, err := Decrypt(ciphertext, key)
	if err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}
	if string(decrypted) != string(plaintext) {
		t.Errorf("Decrypt() = %q, want %q", string(decrypted), string(plaintext))
	}
}

// TestEncrypt_randomNonce verifies repeated encryption differs.
func TestEncrypt_randomNonce(t *testing.T) {
	plaintext := []byte("same input")
	key := []byte("same key")

	first, err := Encrypt(plaintext, key)
	if err != nil {
		t.Fatalf("Encrypt() first error = %v", err)
	}
	second, err := Encrypt(plaintext, key)
	if err != nil {
		t.Fatalf("Encrypt() second error = %v", err)
	}

	if first == second {
		t.Error("Encrypt() twice produced identical ciphertext (nonce should be random)")
	}
}

// TestDecrypt_wrongKey verifies the wrong key fails cleanly.
func TestDecrypt_wrongKey(t *testing.T) {
	ciphertext, err := Encrypt([]byte("secret"), []byte("right key"))
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}

	if _, err := Decrypt(ciphertext, []byte("wrong key")); err == nil {
		t.Error("Decrypt() with wrong key expected error, got nil")
	}
}

// TestDecrypt_invalidInput verifies malformed ciphertexts are rejected.
func TestDecrypt_invalidInput(t *testing.T) {
	key := []byte("key")

	for _, input := range []string{"", "not base64 !!!", "YWJj"} {
		if _, err := Decrypt(input, key); err == nil {
			t.Errorf("Decrypt(%q) expected error, got nil", input)
		}
	}
}
