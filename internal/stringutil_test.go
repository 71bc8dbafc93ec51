package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrim(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  hi  ", "hi"},
		{"\t\nhi\r\n", "hi"},
		{"", ""},
		{"no-edges", "no-edges"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Trim(c.in))
	}
}

func TestEscape(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{`<b>"it's" & more</b>`, "&lt;b&gt;&quot;it&apos;s&quot; &amp; more&lt;/b&gt;"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Escape(c.in))
	}
}
