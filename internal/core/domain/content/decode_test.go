package content

import "testing"

func TestDecodeEntities(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"L&#8217;atelier", "L'atelier"},
		{"&#8216;ouvert&#8217;", "'ouvert'"},
		{"&#8220;citation&#8221;", `"citation"`},
		{"caf&amp;bar", "caf&bar"},
		{"&lt;b&gt;", "<b>"},
		{"&quot;texte&quot;", `"texte"`},
		{"c&#039;est", "c'est"},
		{"deux&nbsp;mots", "deux mots"},
		{"sans entité", "sans entité"},
		{"", ""},
	}
	for _, c := range cases {
		if got := DecodeEntities(c.in); got != c.want {
			t.Errorf("DecodeEntities(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestStripTags(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"<p>Bonjour</p>", "Bonjour"},
		{"<p>Un <strong>mot</strong></p>\n", "Un mot"},
		{"pas de balise", "pas de balise"},
		{"<a href=\"/page\">lien</a>", "lien"},
		{"avant&nbsp;après", "avant après"},
		{"", ""},
	}
	for _, c := range cases {
		if got := StripTags(c.in); got != c.want {
			t.Errorf("StripTags(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPlainText(t *testing.T) {
	in := "<p>L&#8217;été &amp; l&#8217;hiver</p>"
	want := "L'été & l'hiver"
	if got := PlainText(in); got != want {
		t.Fatalf("PlainText(%q) = %q, want %q", in, got, want)
	}
}
