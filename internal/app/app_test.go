package app

import (
	"testing"
	"time"

	"github.com/stpnv0/ExpoBooker/internal/config"
	"github.com/stretchr/testify/assert"
)

type fakePool struct {
	lifetime time.Duration
}

func (p *fakePool) SetConnMaxLifetime(d time.Duration) {
	p.lifetime = d
}

func TestConfigurePool_AppliesConnMaxLifetime(t *testing.T) {
	pool := &fakePool{}

	configurePool(pool, config.PostgresConfig{ConnMaxLifetime: 5 * time.Minute})

	assert.Equal(t, 5*time.Minute, pool.lifetime)
}
