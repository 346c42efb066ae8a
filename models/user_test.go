package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	withName := User{Username: "jdoe", FullName: "Jane Doe"}
	assert.Equal(t, "Jane Doe (jdoe)", withName.DisplayName())

	bare := User{Username: "jdoe"}
	assert.Equal(t, "jdoe", bare.DisplayName())
}
