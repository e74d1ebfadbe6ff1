// Package review は、抽出結果を人手で確認するための一覧表を出力します。
// 識別子の切り出しは近似的なため、生成されたJSONは公開前に目視確認が必要です。
package review

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/shouni/go-model-refs/pkg/types"
)

const duplicateNote = "識別子が重複"

// Duplicates は、複数のレコードで使われている識別子を初出順に返します。
func Duplicates(refs []types.ModelReference) []string {
	counts := make(map[string]int, len(refs))
	var order []string
	for _, ref := range refs {
		if counts[ref.Name] == 0 {
			order = append(order, ref.Name)
		}
		counts[ref.Name]++
	}

	dups := []string{}
	for _, name := range order {
		if counts[name] > 1 {
			dups = append(dups, name)
		}
	}
	return dups
}

// Render は、レコードの一覧と重複識別子の注記を表形式で w に書き出します。
func Render(w io.Writer, refs []types.ModelReference) {
	dup := make(map[string]bool)
	for _, name := range Duplicates(refs) {
		dup[name] = true
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Name", "URL", "Note"})

	for i, ref := range refs {
		note := ""
		if dup[ref.Name] {
			note = duplicateNote
		}
		t.AppendRow(table.Row{i + 1, ref.Name, ref.URL, note})
	}

	t.AppendFooter(table.Row{"", "", fmt.Sprintf("合計 %d 件 (重複識別子 %d 種)", len(refs), len(dup)), ""})
	t.SetStyle(table.StyleRounded)
	t.Render()
}
