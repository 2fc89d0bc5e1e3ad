package flagx

import (
	"os"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	configFlags := []string{"-c", "-config"}

	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{"config among server flags", []string{"-a", ":50051", "-c", "identcore.json", "-d", "postgres://x"}, configFlags, []string{"-c", "identcore.json"}},
		{"equals form", []string{"-config=/etc/identcore.json", "-a", ":50051"}, configFlags, []string{"-config=/etc/identcore.json"}},
		{"equals and separate forms keep order", []string{"-config=one.json", "-c", "two.json"}, configFlags, []string{"-config=one.json", "-c", "two.json"}},
		{"nothing allowed present", []string{"-a", ":1", "-revocation=redis", "stray"}, configFlags, []string{}},
		{"trailing flag without value", []string{"-env"}, []string{"-env"}, []string{"-env"}},
		{"dash-prefixed token is not a value", []string{"-env", "-a", ":1"}, []string{"-env"}, []string{"-env"}},
		{"equals value may start with dashes", []string{"-config=--odd.json"}, configFlags, []string{"-config=--odd.json"}},
		{"several allowed flags", []string{"-a", ":50051", "-env", ".env", "-s", "secret"}, []string{"-env", "-a"}, []string{"-a", ":50051", "-env", ".env"}},
		{"empty args", []string{}, configFlags, []string{}},
		{"repeated flag preserved", []string{"-env", "a.env", "-env", "b.env"}, []string{"-env"}, []string{"-env", "a.env", "-env", "b.env"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FilterArgs() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func Test_jsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	cases := map[string]struct {
		args []string
		want string
	}{
		"short":         {[]string{"testbin", "-c", "/etc/identcore.json"}, "/etc/identcore.json"},
		"long":          {[]string{"testbin", "-config", "cli.json", "-t", "3"}, "cli.json"},
		"absent":        {[]string{"testbin", "-a", ":50051"}, ""},
		"last one wins": {[]string{"testbin", "-c", "1.json", "-config", "2.json"}, "2.json"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			os.Args = tc.args
			assert.Equal(t, tc.want, JsonConfigFlags())
		})
	}
}

func Test_envFileFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-a", ":1", "-env", "/etc/identcore.env"}
	assert.Equal(t, "/etc/identcore.env", EnvFileFlags())

	os.Args = []string{"testbin", "-c", "x.json"}
	assert.Empty(t, EnvFileFlags())
}
