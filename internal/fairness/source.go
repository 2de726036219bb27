package fairness

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"sync/atomic"
	"time"
)

// Source выдает новые раунды. Nonce берется из часов, но внутри процесса
// строго возрастает даже при одинаковых отметках времени.
type Source struct {
	lastNonce atomic.Int64
	now       func() time.Time
	entropy   io.Reader
}

func NewSource() *Source {
	return &Source{
		now:     time.Now,
		entropy: rand.Reader,
	}
}

// NewRound создает раунд. Пустой clientSeed заменяется серверным.
func (s *Source) NewRound(clientSeed string) (Round, error) {
	serverSeed := make([]byte, SeedSize)
	if _, err := io.ReadFull(s.entropy, serverSeed); err != nil {
		return Round{}, err
	}

	if clientSeed == "" {
		b := make([]byte, SeedSize)
		if _, err := io.ReadFull(s.entropy, b); err != nil {
			return Round{}, err
		}
		clientSeed = hex.EncodeToString(b)
	} else if err := ValidateClientSeed(clientSeed); err != nil {
		return Round{}, err
	}

	return Round{
		serverSeed: serverSeed,
		clientSeed: clientSeed,
		nonce:      s.nextNonce(),
	}, nil
}

func (s *Source) nextNonce() int64 {
	for {
		last := s.lastNonce.Load()
		n := s.now().UnixNano()
		if n <= last {
			n = last + 1
		}
		if s.lastNonce.CompareAndSwap(last, n) {
			return n
		}
	}
}
