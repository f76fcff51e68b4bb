package ssh

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/redbadger/sitedeploy/command/commandtest"
)

func TestArgs(t *testing.T) {
	assert.Equal(t,
		[]string{"-o", "BatchMode=yes", "-o", "ConnectTimeout=10", "-p", "2222", "deploy@example.org", "exit"},
		Args("deploy@example.org", 2222),
	)
}

func TestProber_Probe(t *testing.T) {
	const line = "ssh -o BatchMode=yes -o ConnectTimeout=10 -p 22 deploy@example.org exit"
	tests := []struct {
		name     string
		exitCode int
		wantErr  bool
	}{
		{"reachable", 0, false},
		{"key rejected", 255, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := commandtest.New().On(line, "", tt.exitCode)
			err := Prober{Runner: r}.Probe(context.Background(), "deploy@example.org", 22)
			if (err != nil) != tt.wantErr {
				t.Errorf("Probe() error = %v, wantErr %v", err, tt.wantErr)
			}
			assert.Equal(t, []string{line}, r.Lines())
		})
	}
}

func TestCommand(t *testing.T) {
	assert.Equal(t, "ssh -p 2200", Command(2200))
}
