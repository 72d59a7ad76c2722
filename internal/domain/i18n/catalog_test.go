package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	assert.Equal(t, "fr", Resolve("fr").Tag.String())
	assert.Equal(t, "fr", Resolve("fr-CA").Tag.String())
	assert.Equal(t, "pt-BR", Resolve("pt-BR").Tag.String())
	assert.Equal(t, "en", Resolve("ja").Tag.String())
	assert.Equal(t, "en", Resolve("not a tag!").Tag.String())
}

func TestResolve_Auto(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "de_DE.UTF-8")

	assert.Equal(t, "de", Resolve("auto").Tag.String())
	assert.Equal(t, "de", Resolve("").Tag.String())
}

func TestSystemLocale_Default(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "C")

	assert.Equal(t, "en", SystemLocale())
}

func TestTable_FallsBackToEnglish(t *testing.T) {
	de := Resolve("de")
	// German has no dedicated app menu title.
	assert.Equal(t, "Messenger", de.T(MsgMenuApp))
	assert.Equal(t, "Neu laden", de.T(MsgReload))
	assert.Equal(t, "unknown.id", de.T(MessageID("unknown.id")))
}

func TestTables_Complete(t *testing.T) {
	for _, tbl := range tables {
		require.NotEmpty(t, tbl.Name)
		for id := range english.messages {
			assert.NotEmpty(t, tbl.T(id), "table %s message %s", tbl.Tag, id)
		}
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	require.Len(t, langs, len(tables))
	assert.Equal(t, "en", langs[0].Tag)
}
