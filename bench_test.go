package miniconf_test

import (
	"bytes"
	"testing"

	"github.com/KimNorgaard/go-miniconf"
	"github.com/KimNorgaard/go-miniconf/internal/testutil"
	"github.com/KimNorgaard/go-miniconf/render"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSources(t *testing.T) {
	sources, err := testutil.Sources()
	require.NoError(t, err)
	require.Contains(t, sources, "services.mc")

	doc, err := miniconf.ParseBytes(sources["services.mc"])
	require.NoError(t, err)
	require.Equal(t, 41, doc.Len())

	svc, ok := doc.Section("service-07")
	require.True(t, ok)
	require.Equal(t, []string{"name", "port", "weight", "enabled", "replicas", "tags", "limits", "endpoints"}, keys(svc))
	require.Equal(t, miniconf.Number(8007), svc.Value("port"))
	require.Equal(t, miniconf.Object{
		"cpu":    miniconf.Number(4),
		"memory": miniconf.String("1024Mi"),
		"burst":  miniconf.Null{},
	}, svc.Value("limits"))

	var cfg struct {
		Environment string
		Owner       string
		Service40   struct {
			Port int
			Tags []string
		} `miniconf:"service-40"`
	}
	require.NoError(t, miniconf.Unmarshal(sources["services.mc"], &cfg))
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "platform team", cfg.Owner)
	require.Equal(t, 8040, cfg.Service40.Port)
	require.Equal(t, []string{"web", "tier 0", "canary"}, cfg.Service40.Tags)

	var limits struct {
		Limits struct {
			CPU    int
			Memory string
		}
	}
	require.NoError(t, doc.DecodeSection("service-03", &limits))
	require.Equal(t, 4, limits.Limits.CPU)
	require.Equal(t, "1024Mi", limits.Limits.Memory)
}

func keys(s *miniconf.Section) []string {
	var out []string
	for e := range s.All() {
		out = append(out, e.Key)
	}
	return out
}

func BenchmarkParse(b *testing.B) {
	input, err := testutil.ReadTestData("services.mc")
	require.NoError(b, err)

	b.ReportAllocs()
	b.SetBytes(int64(len(input)))

	for b.Loop() {
		if _, err := miniconf.ParseBytes(input); err != nil {
			b.Fatalf("Parse failed during benchmark: %v", err)
		}
	}
}

func BenchmarkPretty(b *testing.B) {
	input, err := testutil.ReadTestData("services.mc")
	require.NoError(b, err)
	doc, err := miniconf.ParseBytes(input)
	require.NoError(b, err)

	var buf bytes.Buffer
	b.ReportAllocs()

	for b.Loop() {
		buf.Reset()
		if err := render.Pretty(&buf, doc); err != nil {
			b.Fatalf("Pretty failed during benchmark: %v", err)
		}
	}
}
