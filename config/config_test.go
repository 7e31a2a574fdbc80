package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetEnvInt(t *testing.T) {
	os.Setenv("SNAKE_TEST_INT", "42")
	defer os.Unsetenv("SNAKE_TEST_INT")
	require.Equal(t, 42, getEnvInt("SNAKE_TEST_INT", 7))

	os.Setenv("SNAKE_TEST_INT", "forty-two")
	require.Equal(t, 7, getEnvInt("SNAKE_TEST_INT", 7))

	require.Equal(t, 7, getEnvInt("SNAKE_TEST_UNSET", 7))
}

func TestGetEnvString(t *testing.T) {
	os.Setenv("SNAKE_TEST_STRING", "cell")
	defer os.Unsetenv("SNAKE_TEST_STRING")
	require.Equal(t, "cell", getEnvString("SNAKE_TEST_STRING", "row-column"))
	require.Equal(t, "row-column", getEnvString("SNAKE_TEST_UNSET", "row-column"))
}

func TestGameValidate(t *testing.T) {
	valid := Game{Width: 10, Height: 10, TickMS: 300, FoodPolicy: "row-column"}
	require.NoError(t, valid.Validate())
	require.Equal(t, 300*time.Millisecond, valid.Interval())
	opts, err := valid.Options()
	require.NoError(t, err)
	require.Len(t, opts, 1)

	tests := map[string]Game{
		"ZeroWidth":    {Width: 0, Height: 10, TickMS: 300},
		"NegHeight":    {Width: 10, Height: -1, TickMS: 300},
		"ZeroTick":     {Width: 10, Height: 10, TickMS: 0},
		"UnknownFood":  {Width: 10, Height: 10, TickMS: 300, FoodPolicy: "anywhere"},
		"NegativeTick": {Width: 10, Height: 10, TickMS: -5},
		"HugeWidth":    {Width: 2147483647, Height: 10, TickMS: 300},
		"HugeHeight":   {Width: 10, Height: 50000, TickMS: 300},
		"JustTooWide":  {Width: 1025, Height: 10, TickMS: 300},
	}
	for name, g := range tests {
		require.Error(t, g.Validate(), name)
	}
}

func TestGameOptionsUnknownPolicy(t *testing.T) {
	g := Game{Width: 10, Height: 10, TickMS: 300, FoodPolicy: "anywhere"}
	opts, err := g.Options()
	require.Error(t, err)
	require.Nil(t, opts)
}

func TestGameValidateMaxDimension(t *testing.T) {
	g := Game{Width: 1024, Height: 1024, TickMS: 300, FoodPolicy: "cell"}
	require.NoError(t, g.Validate())
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	require.Equal(t, Width, d.Width)
	require.Equal(t, Height, d.Height)
	require.Equal(t, TickMS, d.TickMS)
	require.Equal(t, FoodPolicy, d.FoodPolicy)
}
