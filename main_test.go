package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"burger/pkg/infrastructure/storage"
)

func runApp(t *testing.T, input string, args ...string) string {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	out := &bytes.Buffer{}
	err := newApp(strings.NewReader(input), out).Run(append([]string{"burger"}, args...))
	require.NoError(t, err)
	return out.String()
}

func TestOrderThenStatus(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "burger_safe")

	output := runApp(t, "sesame\nbeef\nbbq\ncheddar\n", "--data-dir", dir)

	assert.Contains(t, output, "Welcome to the secure burger maker!")
	assert.Contains(t, output, "Total price (tax included): 9.96 €")
	assert.Contains(t, output, "Burger saved to "+filepath.Join(dir, storage.RecordFileName))

	count, err := os.ReadFile(filepath.Join(dir, storage.CountFileName))
	require.NoError(t, err)
	assert.Equal(t, "1", string(count))

	logs, err := os.ReadFile(filepath.Join(dir, "burger.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logs), `"msg":"Order saved"`)

	status := runApp(t, "", "--data-dir", dir, "status")
	assert.Contains(t, status, "Burgers made: 1\n")
	assert.Contains(t, status, "Burger: sesame bun + beef + bbq + cheddar cheese\n")
	assert.Contains(t, status, "Price: 9.96 €\n")
}

func TestOrderCommandWithAttemptBudget(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "burger_safe")

	output := runApp(t, "brioche\nsesame\n", "--data-dir", dir, "--max-attempts", "1", "order")

	assert.Contains(t, output, "Order cancelled: Too many invalid attempts. Aborting.")
	_, err := os.Stat(filepath.Join(dir, storage.CountFileName))
	assert.True(t, os.IsNotExist(err))
}

func TestStatusWithoutOrders(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "burger_safe")

	status := runApp(t, "", "--data-dir", dir, "status")

	assert.Equal(t, "Burgers made: 0\nNo burger recorded yet.\n", status)
}

func TestInvalidConfigFails(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	dir := t.TempDir()

	err := newApp(strings.NewReader(""), &bytes.Buffer{}).Run([]string{"burger", "--data-dir", dir, "--max-attempts", "0"})

	assert.Error(t, err)
}
