package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/clinic-financial-model/internal/config"
)

var _ Conn = (*Connection)(nil)

func TestNewConnection_Disabled(t *testing.T) {
	conn, err := NewConnection(context.Background(), config.Database{})

	require.Error(t, err)
	assert.Nil(t, conn)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}
