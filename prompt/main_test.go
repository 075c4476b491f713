package prompt_test

import (
	"os"
	"testing"

	"github.com/simonhull/firebird-suite/quill/prompt"
)

func TestMain(m *testing.M) {
	// Rendered output is asserted byte for byte, so keep styling out of it.
	prompt.SetColorEnabled(false)
	os.Exit(m.Run())
}
