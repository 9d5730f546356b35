package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCmdString(t *testing.T) {
	tests := []struct {
		name string
		cmd  Cmd
		want string
	}{
		{
			name: "plain words",
			cmd:  Cmd{Name: "docker", Args: []string{"build", "-t", "app-image", "."}},
			want: "docker build -t app-image .",
		},
		{
			name: "volume spec stays bare",
			cmd:  Cmd{Name: "docker", Args: []string{"-v", "cache:/home/rust/.cargo/git"}},
			want: "docker -v cache:/home/rust/.cargo/git",
		},
		{
			name: "space is quoted",
			cmd:  Cmd{Name: "tar", Args: []string{"czf", "my archive.tar.gz"}},
			want: "tar czf 'my archive.tar.gz'",
		},
		{
			name: "single quote is escaped",
			cmd:  Cmd{Name: "echo", Args: []string{"it's"}},
			want: `echo 'it'\''s'`,
		},
		{
			name: "empty argument",
			cmd:  Cmd{Name: "echo", Args: []string{""}},
			want: "echo ''",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.String())
		})
	}
}

func TestWithSudo(t *testing.T) {
	cmd := Cmd{Name: "chown", Args: []string{"1000:1000", "bin"}, Dir: "/tmp"}

	t.Run("disabled", func(t *testing.T) {
		assert.Equal(t, cmd, cmd.WithSudo(false))
	})

	t.Run("enabled", func(t *testing.T) {
		got := cmd.WithSudo(true)
		assert.Equal(t, "sudo", got.Name)
		assert.Equal(t, []string{"chown", "1000:1000", "bin"}, got.Args)
		assert.Equal(t, "/tmp", got.Dir)
	})

	t.Run("idempotent", func(t *testing.T) {
		once := cmd.WithSudo(true)
		assert.Equal(t, once, once.WithSudo(true))
	})

	t.Run("original untouched", func(t *testing.T) {
		_ = cmd.WithSudo(true)
		assert.Equal(t, "chown", cmd.Name)
		assert.Equal(t, []string{"1000:1000", "bin"}, cmd.Args)
	})
}
