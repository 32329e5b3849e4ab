package markup

import "testing"

func TestEscapeAmpersand(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"literal ampersand", "AT&T", "AT&amp;T"},
		{"named entity preserved", "a &amp; b", "a &amp; b"},
		{"numeric entity preserved", "dash &#8211; here", "dash &#8211; here"},
		{"hex entity preserved", "quote &#x2019; here", "quote &#x2019; here"},
		{"trailing ampersand", "salt &", "salt &amp;"},
		{"ampersand before space", "fish & chips", "fish &amp; chips"},
		{"no ampersand", "plain text", "plain text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeAmpersand(tt.in); got != tt.want {
				t.Errorf("EscapeAmpersand(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscapeUnmatchedAngleBrackets(t *testing.T) {
	allowed := AllowedTags()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"allowed tag kept", "a <italic>b</italic> c", "a <italic>b</italic> c"},
		{"allowed tag with attributes kept",
			`see <ext-link xlink:href="https://example.org">here</ext-link>`,
			`see <ext-link xlink:href="https://example.org">here</ext-link>`},
		{"disallowed tag escaped", "a <blink>b</blink> c", "a &lt;blink&gt;b&lt;/blink&gt; c"},
		{"bare less-than escaped", "x < y", "x &lt; y"},
		{"bare greater-than escaped", "x > y", "x &gt; y"},
		{"mml prefix kept", "<mml:math><mml:mi>x</mml:mi></mml:math>",
			"<mml:math><mml:mi>x</mml:mi></mml:math>"},
		{"unterminated bracket escaped", "a < b <italic>c</italic>",
			"a &lt; b <italic>c</italic>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeUnmatchedAngleBrackets(tt.in, allowed); got != tt.want {
				t.Errorf("EscapeUnmatchedAngleBrackets(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
