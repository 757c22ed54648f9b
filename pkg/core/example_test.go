package core_test

import (
	"fmt"
	"strings"

	"github.com/linelint/linelint/pkg/core"
)

// ExampleScan checks an in-memory document with figures exempted.
func ExampleScan() {
	doc := strings.Join([]string{
		`\begin{figure}`,
		`  \includegraphics[width=\linewidth]{plots/a-rather-long-file-name-that-nobody-wants-to-wrap.pdf}`,
		`\end{figure}`,
		`Prose should wrap well before it reaches the right margin of a standard terminal window.`,
	}, "\n")

	cfg := core.DefaultConfig()
	cfg.Regions = []string{"figure"}

	res, err := core.Scan(strings.NewReader(doc), "paper.tex", cfg)
	if err != nil {
		panic(err)
	}
	for _, v := range res.Violations {
		fmt.Println(v.Message())
	}
	// Output: paper.tex:4: Line is longer than 80 characters
}
