// Package fairness реализует commit-reveal генератор исходов, общий для всех игр.
//
// Исход раунда полностью определяется тройкой (serverSeed, clientSeed, nonce):
// до раунда клиент получает только SHA-256 от serverSeed, после раунда
// serverSeed раскрывается и любой может пересчитать результат.
package fairness

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
)

// SeedSize размер server seed в байтах
const SeedSize = 32

var (
	ErrInvalidServerSeed = errors.New("server seed must be 64 hex characters")
	ErrInvalidClientSeed = errors.New("client seed must be 1-64 printable characters without ':'")
)

// DeriveBytes - HMAC-SHA256(key=serverSeed, message="clientSeed:nonce[:label]").
// Несколько независимых значений в одном раунде получаются сменой label.
func DeriveBytes(serverSeed []byte, clientSeed string, nonce int64, label string) [sha256.Size]byte {
	msg := clientSeed + ":" + strconv.FormatInt(nonce, 10)
	if label != "" {
		msg += ":" + label
	}

	mac := hmac.New(sha256.New, serverSeed)
	mac.Write([]byte(msg))

	var out [sha256.Size]byte
	copy(out[:], mac.Sum(nil))
	return out
}

// DeriveUint берет первые 4 байта хэша как big-endian uint32 и приводит по модулю.
//
// Известное ограничение: если modulus не делит 2^32 нацело, младшие значения
// выпадают чуть чаще (смещение порядка modulus/2^32). Для игровых диапазонов
// это пренебрежимо, а отказ от rejection sampling сохраняет простую формулу
// проверки для игрока. При modulus == 0 возвращается 0.
func DeriveUint(hash [sha256.Size]byte, modulus uint32) uint32 {
	if modulus == 0 {
		return 0
	}
	return binary.BigEndian.Uint32(hash[:4]) % modulus
}

// CommitmentHash - hex(SHA-256(serverSeed))
func CommitmentHash(serverSeed []byte) string {
	sum := sha256.Sum256(serverSeed)
	return hex.EncodeToString(sum[:])
}

// Verify проверяет, что раскрытый serverSeed соответствует опубликованному хэшу
func Verify(serverSeedHex, commitment string) bool {
	seed, err := decodeServerSeed(serverSeedHex)
	if err != nil {
		return false
	}
	return hmac.Equal([]byte(CommitmentHash(seed)), []byte(commitment))
}

// ValidateClientSeed - clientSeed входит в сообщение HMAC как есть, поэтому ':' запрещен
func ValidateClientSeed(clientSeed string) error {
	if len(clientSeed) == 0 || len(clientSeed) > 64 {
		return ErrInvalidClientSeed
	}
	for _, c := range clientSeed {
		if c < 0x21 || c > 0x7e || c == ':' {
			return ErrInvalidClientSeed
		}
	}
	return nil
}

func decodeServerSeed(serverSeedHex string) ([]byte, error) {
	seed, err := hex.DecodeString(serverSeedHex)
	if err != nil || len(seed) != SeedSize {
		return nil, ErrInvalidServerSeed
	}
	return seed, nil
}

// Round - неизменяемая тройка сидов одного раунда
type Round struct {
	serverSeed []byte
	clientSeed string
	nonce      int64
}

// Restore собирает раунд из раскрытых значений (проверка, симуляция, тесты)
func Restore(serverSeedHex, clientSeed string, nonce int64) (Round, error) {
	seed, err := decodeServerSeed(serverSeedHex)
	if err != nil {
		return Round{}, err
	}
	if err := ValidateClientSeed(clientSeed); err != nil {
		return Round{}, err
	}
	return Round{serverSeed: seed, clientSeed: clientSeed, nonce: nonce}, nil
}

// ServerSeed возвращает секрет раунда. Отдавать клиенту только после завершения раунда.
func (r Round) ServerSeed() string {
	return hex.EncodeToString(r.serverSeed)
}

func (r Round) ServerSeedHash() string {
	return CommitmentHash(r.serverSeed)
}

func (r Round) ClientSeed() string {
	return r.clientSeed
}

func (r Round) Nonce() int64 {
	return r.nonce
}

// IsZero - раунд не был создан через Source или Restore
func (r Round) IsZero() bool {
	return len(r.serverSeed) == 0
}

// Bytes - хэш исхода для label
func (r Round) Bytes(label string) [sha256.Size]byte {
	return DeriveBytes(r.serverSeed, r.clientSeed, r.nonce, label)
}

// Uint - значение в [0, modulus) для label
func (r Round) Uint(label string, modulus int) int {
	if modulus <= 0 {
		return 0
	}
	return int(DeriveUint(r.Bytes(label), uint32(modulus)))
}

// Commitment - то, что клиент получает до раскрытия serverSeed
type Commitment struct {
	ServerSeedHash string
	ClientSeed     string
	Nonce          int64
}

func (r Round) Commitment() Commitment {
	return Commitment{
		ServerSeedHash: r.ServerSeedHash(),
		ClientSeed:     r.clientSeed,
		Nonce:          r.nonce,
	}
}

func (r Round) String() string {
	return fmt.Sprintf("round(hash=%s client=%s nonce=%d)", r.ServerSeedHash(), r.clientSeed, r.nonce)
}
