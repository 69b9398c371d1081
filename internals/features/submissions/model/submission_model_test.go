package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmissionStatusValid(t *testing.T) {
	for _, s := range SubmissionStatuses() {
		assert.True(t, s.Valid(), "status %s", s)
	}
	assert.False(t, SubmissionStatus("").Valid())
	assert.False(t, SubmissionStatus("aprovado").Valid())
	assert.False(t, SubmissionStatus("RECEBIDO").Valid())
}
