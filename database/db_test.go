package database

import (
	"os"
	"testing"
)

func TestConnectRetries(t *testing.T) {
	cases := []struct {
		env  string
		want int
	}{
		{"", 5},
		{"7", 7},
		{"0", 1},
		{"-3", 1},
		{"abc", 1},
	}
	for _, c := range cases {
		if c.env == "" {
			os.Unsetenv("DB_CONNECT_RETRIES")
		} else {
			os.Setenv("DB_CONNECT_RETRIES", c.env)
		}
		if got := connectRetries(); got != c.want {
			t.Errorf("DB_CONNECT_RETRIES=%q: got %d, want %d", c.env, got, c.want)
		}
	}
	os.Unsetenv("DB_CONNECT_RETRIES")
}
