package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePicks(t *testing.T) {
	picks, errMsg := parsePicks("1, 3", 4)
	require.Empty(t, errMsg)
	assert.Equal(t, []int{0, 2}, picks)

	_, errMsg = parsePicks("5", 4)
	assert.NotEmpty(t, errMsg)

	_, errMsg = parsePicks("2,2", 4)
	assert.NotEmpty(t, errMsg, "duplicates are rejected")

	_, errMsg = parsePicks("abc", 4)
	assert.NotEmpty(t, errMsg)

	_, errMsg = parsePicks("", 4)
	assert.NotEmpty(t, errMsg)
}

func TestParseAnswerNumber(t *testing.T) {
	req := &promptRequest{kind: promptNumber, min: 1, max: 6}

	reply, errMsg := parseAnswer(req, "4")
	require.Empty(t, errMsg)
	assert.Equal(t, 4, reply.number)

	_, errMsg = parseAnswer(req, "9")
	assert.NotEmpty(t, errMsg)

	_, errMsg = parseAnswer(req, "four")
	assert.NotEmpty(t, errMsg)
}

func TestParseAnswerConfirm(t *testing.T) {
	req := &promptRequest{kind: promptConfirm}

	reply, errMsg := parseAnswer(req, "Y")
	require.Empty(t, errMsg)
	assert.True(t, reply.confirmed)

	reply, errMsg = parseAnswer(req, "no")
	require.Empty(t, errMsg)
	assert.False(t, reply.confirmed)

	_, errMsg = parseAnswer(req, "maybe")
	assert.NotEmpty(t, errMsg)
}

func TestParseAnswerIcons(t *testing.T) {
	req := &promptRequest{kind: promptIcons, min: 2, max: 2, options: []string{"A", "B", "C"}}

	reply, errMsg := parseAnswer(req, "1,3")
	require.Empty(t, errMsg)
	assert.Equal(t, []int{0, 2}, reply.picks)

	_, errMsg = parseAnswer(req, "1")
	assert.NotEmpty(t, errMsg, "pick count below minimum is rejected")
}
