package largebcn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoString_MatchesString(t *testing.T) {
	b := twoBlockNetwork(t)
	assert.Equal(t, b.String(), b.GoString())
	assert.Contains(t, b.String(), "blocks:")
}
