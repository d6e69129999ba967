// Package static embeds the browser assets served under /static/.
package static

import "embed"

//go:embed css js
var FS embed.FS
