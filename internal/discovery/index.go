package discovery

import (
	"path/filepath"

	"github.com/temirov/apidoc/internal/types"
	"github.com/temirov/apidoc/internal/utils"
)

// BuildIndex maps both the basename without suffix and the basename of every file to its full path.
// When two files share a derived name the later file wins; collisions are not reported.
func BuildIndex(files types.FileList) types.NameIndex {
	index := make(types.NameIndex, len(files)*2)
	for _, filePath := range files {
		index[utils.TrimExtension(filePath)] = filePath
		index[filepath.Base(filePath)] = filePath
	}
	return index
}
