package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOpaqueReference(t *testing.T) {
	assert.True(t, IsOpaqueReference("65a1f0c2e4b0a1b2c3d4e5f6"))
	assert.True(t, IsOpaqueReference("65A1F0C2E4B0A1B2C3D4E5F6"))
	assert.True(t, IsOpaqueReference(" 65a1f0c2e4b0a1b2c3d4e5f6 "))
	assert.False(t, IsOpaqueReference("politics"))
	assert.False(t, IsOpaqueReference(""))
	assert.False(t, IsOpaqueReference("65a1f0c2e4b0a1b2c3d4e5f"))
	assert.False(t, IsOpaqueReference("65a1f0c2e4b0a1b2c3d4e5f6a"))
	assert.False(t, IsOpaqueReference("65a1f0c2e4b0a1b2c3d4e5fz"))
}

func TestNewReference(t *testing.T) {
	a, b := NewReference(), NewReference()
	assert.True(t, IsOpaqueReference(a))
	assert.NotEqual(t, a, b)
}
