// Package syntaxcheck validates syntax-definition sources before they
// are linked into the editor: modern .sublime-syntax files must parse
// as YAML, legacy .tmLanguage files as plist XML.
//
// Validation is advisory. Install never consults it; a broken or
// missing source still gets its link.
package syntaxcheck

import (
	"path/filepath"

	"github.com/beevik/etree"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/sublink/pkg/errors"
	"github.com/arthur-debert/sublink/pkg/logging"
	"github.com/arthur-debert/sublink/pkg/types"
)

// Result is the check outcome for one syntax-definition source.
type Result struct {
	Entry types.LinkEntry

	// Missing is true when the source file does not exist. Missing
	// sources are reported but not treated as parse failures, since
	// the installer tolerates them.
	Missing bool

	// Err is the parse failure, nil when the file is valid.
	Err error
}

// Ok reports whether the source exists and parsed cleanly.
func (r Result) Ok() bool {
	return !r.Missing && r.Err == nil
}

// Check validates every syntax-category entry. Entries of other
// categories and files with unrecognized extensions are skipped.
func Check(fs types.FS, entries []types.LinkEntry) []Result {
	logger := logging.GetLogger("syntaxcheck")

	var results []Result
	for _, entry := range entries {
		if entry.Category != types.CategorySyntax {
			continue
		}

		ext := filepath.Ext(entry.Source)
		if ext != ".sublime-syntax" && ext != ".tmLanguage" {
			continue
		}

		res := Result{Entry: entry}
		data, err := fs.ReadFile(entry.Source)
		if err != nil {
			res.Missing = true
			logger.Debug().Str("source", entry.Source).Msg("syntax source missing, skipping parse")
			results = append(results, res)
			continue
		}

		switch ext {
		case ".sublime-syntax":
			res.Err = checkYAML(entry.Source, data)
		case ".tmLanguage":
			res.Err = checkPlist(entry.Source, data)
		}

		if res.Err != nil {
			logger.Warn().Err(res.Err).Str("source", entry.Source).Msg("syntax definition failed to parse")
		}
		results = append(results, res)
	}
	return results
}

func checkYAML(path string, data []byte) error {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.Wrapf(err, errors.ErrSyntaxParse, "%s is not valid YAML", path)
	}
	return nil
}

func checkPlist(path string, data []byte) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return errors.Wrapf(err, errors.ErrSyntaxParse, "%s is not valid plist XML", path)
	}
	if doc.SelectElement("plist") == nil {
		return errors.Newf(errors.ErrSyntaxParse, "%s has no plist root element", path)
	}
	return nil
}
