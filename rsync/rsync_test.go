package rsync

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redbadger/sitedeploy/command/commandtest"
)

var files = []string{"index.html", "style.css"}

func TestArgs(t *testing.T) {
	type args struct {
		port   int
		dest   string
		dryRun bool
	}
	tests := []struct {
		name string
		args args
		want []string
	}{
		{
			"default port",
			args{22, "deploy@example.org:/var/www/", false},
			[]string{"-avz", "--include=index.html", "--include=style.css", "--exclude=*",
				"-e", "ssh -p 22", "./", "deploy@example.org:/var/www/"},
		},
		{
			"dry run on custom port",
			args{2222, "me@host:site/", true},
			[]string{"-avz", "--dry-run", "--include=index.html", "--include=style.css", "--exclude=*",
				"-e", "ssh -p 2222", "./", "me@host:site/"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Args(files, tt.args.port, tt.args.dest, tt.args.dryRun); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Args() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArgs_ExcludeFollowsIncludes(t *testing.T) {
	got := Args(files, 22, "u@h:p/", false)
	exclude := -1
	for i, a := range got {
		if a == "--exclude=*" {
			exclude = i
		}
		if a == "--include=index.html" || a == "--include=style.css" {
			assert.Equal(t, -1, exclude, "include after exclude-all would be ignored")
		}
	}
	assert.NotEqual(t, -1, exclude)
}

func TestTransfer_Send(t *testing.T) {
	const line = "rsync -avz --include=index.html --include=style.css --exclude=* -e ssh -p 22 ./ u@h:/srv/"
	r := commandtest.New()
	require.NoError(t, Transfer{Runner: r}.Send(context.Background(), "/site", files, 22, "u@h:/srv/"))
	require.Len(t, r.Calls, 1)
	assert.Equal(t, "/site", r.Calls[0].Dir)
	assert.Equal(t, line, r.Calls[0].Line())

	r.On(line, "", 12)
	assert.Error(t, Transfer{Runner: r}.Send(context.Background(), "/site", files, 22, "u@h:/srv/"))
}
