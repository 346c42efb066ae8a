package employee

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUsernameTaken(t *testing.T) {
	assert.True(t, usernameTaken(gorm.ErrDuplicatedKey))
	assert.True(t, usernameTaken(fmt.Errorf("create user: %w", gorm.ErrDuplicatedKey)))

	assert.False(t, usernameTaken(nil))
	assert.False(t, usernameTaken(gorm.ErrInvalidData))
	assert.False(t, usernameTaken(fmt.Errorf("connection reset")))
}
