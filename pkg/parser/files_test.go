package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"apsearch/pkg/utils/stream"
)

func record(docNo, text string) string {
	return fmt.Sprintf("<DOC>\n<DOCNO> %s </DOCNO>\n<TEXT>%s</TEXT>\n</DOC>\n", docNo, text)
}

func writeCollection(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestReadFiles(t *testing.T) {
	dir := writeCollection(t, map[string]string{
		"ap890102": record("AP890102-0001", "b"),
		"ap890101": record("AP890101-0001", "a"),
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	files, err := ReadFiles(dir)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "ap890101"),
		filepath.Join(dir, "ap890102"),
	}, files)
}

func TestParseDirDocsOrder(t *testing.T) {
	// Several workers, but docs must still arrive in file order, then
	// record order within a file. That order fixes internal ids.
	dir := writeCollection(t, map[string]string{
		"f1": record("AP-0001", "one") + record("AP-0002", "two"),
		"f2": record("AP-0003", "three"),
		"f3": record("AP-0004", "four") + record("AP-0005", "five"),
	})

	files, err := ReadFiles(dir)
	require.NoError(t, err)

	for _, workers := range []int{1, 4} {
		consumer := stream.NewArrayConsumer[Doc]()
		err = ParseDirDocs(files, Options{Workers: workers}, consumer)
		require.NoError(t, err)

		docNos := []string{}
		for _, doc := range consumer.Collect() {
			docNos = append(docNos, doc.DocNo)
		}
		require.Equal(t, []string{"AP-0001", "AP-0002", "AP-0003", "AP-0004", "AP-0005"}, docNos)
	}
}

func TestParseDirDocsNearDupFilter(t *testing.T) {
	dir := writeCollection(t, map[string]string{
		"f1": record("AP-0001", "identical near duplicate body text"),
		"f2": record("AP-0002", "identical near duplicate body text"),
		"f3": record("AP-0003", "a completely different story altogether"),
	})

	files, err := ReadFiles(dir)
	require.NoError(t, err)

	consumer := stream.NewArrayConsumer[Doc]()
	err = ParseDirDocs(files, Options{Workers: 2, NearDupFilter: true}, consumer)
	require.NoError(t, err)

	docNos := []string{}
	for _, doc := range consumer.Collect() {
		docNos = append(docNos, doc.DocNo)
	}
	require.Equal(t, []string{"AP-0001", "AP-0003"}, docNos)
}

func TestParseDirDocsMalformed(t *testing.T) {
	dir := writeCollection(t, map[string]string{
		"f1": record("AP-0001", "fine"),
		"f2": "<DOC>\n<TEXT>no identifier</TEXT>\n</DOC>\n",
	})

	files, err := ReadFiles(dir)
	require.NoError(t, err)

	consumer := stream.NewArrayConsumer[Doc]()
	err = ParseDirDocs(files, Options{Workers: 2}, consumer)
	require.ErrorIs(t, err, ErrMalformedDocument)
}
