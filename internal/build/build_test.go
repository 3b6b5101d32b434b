package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/syringe/internal/build"
)

func TestString(t *testing.T) {
	assert.Equal(t, "syringe version dev (none)", build.String())
}
