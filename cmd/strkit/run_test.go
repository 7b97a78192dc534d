package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strkit/pkg/config"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, args ...string) result {
	t.Helper()
	config.ResetCache()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestRun_Transforms(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "mask", args: []string{"mask", "13812345678"}, expected: "138****5678"},
		{name: "mask passes through", args: []string{"mask", "138-1234-5678"}, expected: "138-1234-5678"},
		{name: "mask normalized", args: []string{"--normalize", "mask", " １３８１２３４５６７８ "}, expected: "138****5678"},
		{name: "money", args: []string{"money", "1234567"}, expected: "1,234,567"},
		{name: "money drops decimal point", args: []string{"money", "1234567.89"}, expected: "123,456,789"},
		{name: "money empty", args: []string{"money", ""}, expected: ""},
		{name: "money normalized", args: []string{"--normalize", "money", "１２３４"}, expected: "1,234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, tt.args...)
			assert.Equal(t, exitOK, res.code, res.stderr)
			assert.Equal(t, tt.expected+"\n", res.stdout)
		})
	}
}

func TestRun_Checks(t *testing.T) {
	t.Setenv("STRKIT_LANG", "en")

	tests := []struct {
		name    string
		args    []string
		code    int
		message string
	}{
		{name: "valid phone", args: []string{"phone", "13812345678"}, code: exitOK},
		{name: "invalid phone", args: []string{"phone", "12812345678"}, code: exitInvalid, message: "phone number must be a valid 11-digit mobile number"},
		{name: "valid id card", args: []string{"idcard", "11010519491231002X"}, code: exitOK},
		{name: "invalid id card", args: []string{"idcard", "1101051949123100"}, code: exitInvalid, message: "ID card number must be a valid 18-character ID card number"},
		{name: "valid plate", args: []string{"plate", "京A12345"}, code: exitOK},
		{name: "lowercase plate", args: []string{"plate", "京a12345"}, code: exitInvalid, message: "plate number must be a valid vehicle plate number"},
		{name: "normalized plate", args: []string{"--normalize", "plate", " 京a·12345"}, code: exitOK},
		{name: "required present", args: []string{"required", "x"}, code: exitOK},
		{name: "required blank", args: []string{"required", "   "}, code: exitInvalid, message: "value is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, tt.args...)
			assert.Equal(t, tt.code, res.code)
			if tt.code == exitOK {
				assert.Equal(t, "true\n", res.stdout)
				return
			}
			assert.Equal(t, "false\n", res.stdout)
			assert.Contains(t, res.stderr, tt.message)
		})
	}
}

func TestRun_Language(t *testing.T) {
	t.Run("flag", func(t *testing.T) {
		res := runCLI(t, "--lang", "zh", "phone", "123")
		assert.Equal(t, exitInvalid, res.code)
		assert.Contains(t, res.stderr, "手机号码必须是有效的11位手机号码")
	})

	t.Run("environment with region", func(t *testing.T) {
		t.Setenv("STRKIT_LANG", "zh-CN")
		res := runCLI(t, "required", "")
		assert.Equal(t, exitInvalid, res.code)
		assert.Contains(t, res.stderr, "输入值不能为空")
	})

	t.Run("unsupported falls back to english", func(t *testing.T) {
		t.Setenv("STRKIT_LANG", "fr")
		res := runCLI(t, "plate", "nope")
		assert.Equal(t, exitInvalid, res.code)
		assert.Contains(t, res.stderr, "plate number must be a valid vehicle plate number")
	})
}

func TestRun_LogsCarryRunID(t *testing.T) {
	t.Setenv("STRKIT_ENV", "production")
	t.Setenv("STRKIT_LOG_LEVEL", "debug")

	res := runCLI(t, "mask", "13812345678")
	require.Equal(t, exitOK, res.code)

	line := strings.TrimSpace(strings.Split(res.stderr, "\n")[0])
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry), res.stderr)
	assert.Equal(t, "mask", entry["op"])
	assert.Equal(t, "strkit", entry["service"])
	runID, _ := entry["run_id"].(string)
	assert.Len(t, runID, 36)
	assert.NotContains(t, res.stderr, "13812345678")
}

func TestRun_Usage(t *testing.T) {
	t.Run("no arguments", func(t *testing.T) {
		res := runCLI(t)
		assert.Equal(t, exitUsage, res.code)
		assert.Contains(t, res.stderr, "Usage:")
		assert.Contains(t, res.stderr, "plate")
	})

	t.Run("unknown command", func(t *testing.T) {
		res := runCLI(t, "shout", "x")
		assert.Equal(t, exitUsage, res.code)
		assert.Contains(t, res.stderr, `unknown command "shout"`)
	})

	t.Run("help", func(t *testing.T) {
		res := runCLI(t, "--help")
		assert.Equal(t, exitOK, res.code)
		assert.Contains(t, res.stdout, "--normalize")
		for name := range commands {
			assert.Contains(t, res.stdout, name)
		}
	})

	t.Run("bad flag", func(t *testing.T) {
		res := runCLI(t, "--loud", "mask", "1")
		assert.Equal(t, exitUsage, res.code)
		assert.Contains(t, res.stderr, "unknown flag: --loud")
	})

	t.Run("missing value", func(t *testing.T) {
		res := runCLI(t, "phone")
		assert.Equal(t, exitUsage, res.code)
		assert.Contains(t, res.stderr, "accepts 1 arg(s), received 0")
	})

	t.Run("too many values", func(t *testing.T) {
		res := runCLI(t, "mask", "1", "2")
		assert.Equal(t, exitUsage, res.code)
		assert.Empty(t, res.stdout)
	})

	t.Run("missing env file", func(t *testing.T) {
		res := runCLI(t, "--env-file", "testdata/missing.env", "mask", "1")
		assert.Equal(t, exitUsage, res.code)
		assert.Empty(t, res.stdout)
	})
}

func TestRun_FlagsAfterCommand(t *testing.T) {
	res := runCLI(t, "plate", "--normalize", " 京a-12345 ")
	assert.Equal(t, exitOK, res.code, res.stderr)
	assert.Equal(t, "true\n", res.stdout)
}
