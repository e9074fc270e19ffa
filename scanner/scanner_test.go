package scanner

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `
import { useTranslation } from 'next-i18next'

export default function Home() {
  const { t } = useTranslation('common')
  const label = isOpen ? t('menu.close') : t("menu.open")

  return (
    <Layout title={t(` + "`home.title`" + `)}>
      <h1>{t('home.heading', { name })}</h1>
      <p>{i18n.t('home.intro')}</p>
      <p>{format('not.a.key')}</p>
      <p>{t(dynamicKey)}</p>
      <p>{t(` + "`home.${section}`" + `)}</p>
      <p>{t('prefix.' + suffix)}</p>
      <p>{t('')}</p>
      <p>{t(
        'home.multiline'
      )}</p>
    </Layout>
  )
}
`

func TestKeys(t *testing.T) {
	expected := []string{
		"menu.close",
		"menu.open",
		"home.title",
		"home.heading",
		"home.intro",
		"home.multiline",
	}

	s, err := New([]string{"t"}, nil)
	require.NoError(t, err)

	assert.Equal(t, expected, s.Keys(page))
}

func TestKeysWithEscapes(t *testing.T) {
	tests := map[string]string{
		`t('it\'s')`:           "it's",
		`t("say \"hi\"")`:      `say "hi"`,
		`t('tab\there')`:       "tab\there",
		`t('été')`:             "été",
		`t('\u{1F600} smile')`: "😀 smile",
		`t('😀 smile')`:         "😀 smile",
		`t('\x41BC')`:          "ABC",
		`t('back\\slash')`:     `back\slash`,
	}

	s, err := New([]string{"t"}, nil)
	require.NoError(t, err)

	for src, key := range tests {
		assert.Equal(t, []string{key}, s.Keys(src), src)
	}
}

func TestKeysWithCustomFunctions(t *testing.T) {
	s, err := New([]string{"i18next.t", "translate"}, nil)
	require.NoError(t, err)

	keys := s.Keys(`i18next.t('a'); translate("b"); t('c'); other.translate('d')`)

	assert.Equal(t, []string{"a", "b", "d"}, keys)
}

func TestKeysRepeated(t *testing.T) {
	s, err := New([]string{"t"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "a"}, s.Keys(`t('a'),t('b');t('a')`))
}

func TestNewWithoutFunctions(t *testing.T) {
	_, err := New(nil, nil)
	assert.EqualError(t, err, "At least one translation function is required")
}

func TestNewWithInvalidExclude(t *testing.T) {
	_, err := New([]string{"t"}, []string{"src/[a-"})
	assert.ErrorContains(t, err, "Invalid exclude pattern 'src/[a-'")
}

func TestScan(t *testing.T) {
	fs := afero.NewMemMapFs()

	files := map[string]string{
		"pages/index.tsx":                `t('page.index')`,
		"pages/about/index.tsx":          `t('page.about')`,
		"src/components/Button.jsx":      `t('button.ok'); t('page.index')`,
		"src/components/Button.spec.jsx": `t('spec.only')`,
		"src/node_modules/lib/index.js":  `t('vendored')`,
		"src/styles/theme.css":           `.t('css.is.scanned.too')`,
		"public/locales/en/common.json":  `{"t('not.scanned')": ""}`,
	}

	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}

	s, err := New([]string{"t"}, []string{"**/node_modules", "**/*.spec.jsx"})
	require.NoError(t, err)

	keys, err := s.Scan(fs, "pages", "src")
	require.NoError(t, err)

	expected := []string{
		"page.about",
		"page.index",
		"button.ok",
		"page.index",
		"css.is.scanned.too",
	}

	assert.Equal(t, expected, keys)
}

func TestScanWithMissingDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "pages/index.tsx", []byte(`t('page.index')`), 0644))

	s, err := New([]string{"t"}, nil)
	require.NoError(t, err)

	_, err = s.Scan(fs, "pages", "src")
	assert.Error(t, err)
}
