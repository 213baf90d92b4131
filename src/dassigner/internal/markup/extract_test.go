package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{
			name: "marker block",
			raw:  "Sure!\n<DAssigner-Start>\n<div class=\"p-4\">Hi</div>\n<DAssigner-End>\nthanks",
			want: `<div class="p-4">Hi</div>`,
		},
		{
			name: "markers win over fences",
			raw:  "```html\n<p>fence</p>\n```<DAssigner-Start><p>marker</p><DAssigner-End>",
			want: "<p>marker</p>",
		},
		{
			name: "end marker before start falls through to fence",
			raw:  "<DAssigner-End>```html\n<p>fence</p>\n```<DAssigner-Start>",
			want: "<p>fence</p>",
		},
		{
			name: "fenced block without language",
			raw:  "Here you go:\n```\n<section>ok</section>\n```",
			want: "<section>ok</section>",
		},
		{
			name: "widest tag span",
			raw:  "The design is <main><h1>Title</h1></main> as requested.",
			want: "<main><h1>Title</h1></main>",
		},
		{
			name: "empty marker block falls through to fence",
			raw:  "<DAssigner-Start> <DAssigner-End>\n```html\n<nav>n</nav>\n```",
			want: "<nav>n</nav>",
		},
		{
			name:    "plain prose",
			raw:     "I cannot help with that.",
			wantErr: InvalidMarkupError,
		},
		{
			name:    "blank",
			raw:     " \n\t",
			wantErr: EmptyResponseError,
		},
		{
			name:    "fence containing prose",
			raw:     "```\nno markup here\n```",
			wantErr: InvalidMarkupError,
		},
		{
			name: "table fragment",
			raw:  "<DAssigner-Start><tr><td>a</td></tr><DAssigner-End>",
			want: "<tr><td>a</td></tr>",
		},
		{
			name: "body attributes survive",
			raw:  "```html\n<body class=\"bg-gray-900\"><div>x</div></body>\n```",
			want: `<body class="bg-gray-900"><div>x</div></body>`,
		},
		{
			name: "scripts are stripped",
			raw:  "<DAssigner-Start><div onclick=\"steal()\">a<script>alert(1)</script></div><DAssigner-End>",
			want: "<div>a</div>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Extract(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
