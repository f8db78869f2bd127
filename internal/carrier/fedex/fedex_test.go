package fedex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
)

var testCreds = Credentials{
	Key:      "k3y",
	Password: "s3cret",
	Account:  "510087020",
	Login:    "118511895",
}

func fixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(b)
}

// requestRoot parses an assembled request so tests can query it by path.
func requestRoot(t *testing.T, doc string) *etree.Element {
	t.Helper()
	d := etree.NewDocument()
	require.NoError(t, d.ReadFromString(doc))
	require.NotNil(t, d.Root())
	return d.Root()
}

func text(t *testing.T, e *etree.Element, path string) string {
	t.Helper()
	el := e.FindElement(path)
	require.NotNil(t, el, "missing element %s", path)
	return el.Text()
}

func mustPackage(t *testing.T, weight float64, dims [3]float64, units domain.UnitSystem) domain.Package {
	t.Helper()
	p, err := domain.NewPackage(weight, dims, units)
	require.NoError(t, err)
	return p
}

func TestCredentialsValidate(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		assert.NoError(t, testCreds.Validate())
	})

	t.Run("missing fields are a configuration error", func(t *testing.T) {
		err := Credentials{Key: "k"}.Validate()

		require.ErrorIs(t, err, domain.ErrInvalidConfiguration)
		assert.Contains(t, err.Error(), "password")
		assert.Contains(t, err.Error(), "account")
		assert.Contains(t, err.Error(), "login")
	})
}

func TestRedactCredentials(t *testing.T) {
	doc, err := BuildTrackingRequest(testCreds, "123456789012", domain.RequestOptions{})
	require.NoError(t, err)

	redacted := RedactCredentials(doc)

	assert.NotContains(t, redacted, testCreds.Key)
	assert.NotContains(t, redacted, testCreds.Password)
	assert.Contains(t, redacted, "<Key>[REDACTED]</Key>")
	assert.Contains(t, redacted, "<Password>[REDACTED]</Password>")
	assert.Contains(t, redacted, "<AccountNumber>510087020</AccountNumber>")
}

func TestStripNamespacePrefixes(t *testing.T) {
	in := `<?xml version="1.0"?><v6:RateReply xmlns:v6="http://fedex.com/ws/rate/v6"><v6:Amount>1.5</v6:Amount><Plain/></v6:RateReply>`

	assert.Equal(t,
		`<?xml version="1.0"?><RateReply xmlns:v6="http://fedex.com/ws/rate/v6"><Amount>1.5</Amount><Plain/></RateReply>`,
		StripNamespacePrefixes(in))
}
