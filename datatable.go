package readability

import (
	"strconv"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

func (r *Readability) getRowAndColumnCount(table *html.Node) (int, int) {
	rows := 0
	columns := 0
	trs := dom.GetElementsByTagName(table, "tr")

	for _, tr := range trs {
		rowSpan, _ := strconv.Atoi(dom.GetAttribute(tr, "rowspan"))
		if rowSpan == 0 {
			rowSpan = 1
		}
		rows += rowSpan

		columnsInThisRow := 0
		for _, cell := range dom.GetElementsByTagName(tr, "td") {
			colSpan, _ := strconv.Atoi(dom.GetAttribute(cell, "colspan"))
			if colSpan == 0 {
				colSpan = 1
			}
			columnsInThisRow += colSpan
		}

		if columnsInThisRow > columns {
			columns = columnsInThisRow
		}
	}

	return rows, columns
}

// markDataTables flags which <table> descendants of root look like data
// tables (as opposed to layout tables), recording the result in the
// identity map so cleanConditionally can spare them.
func (r *Readability) markDataTables(root *html.Node) {
	for _, table := range dom.GetElementsByTagName(root, "table") {
		if dom.GetAttribute(table, "role") == "presentation" {
			r.setReadabilityDataTable(table, false)
			continue
		}

		if dom.GetAttribute(table, "datatable") == "0" {
			r.setReadabilityDataTable(table, false)
			continue
		}

		if dom.HasAttribute(table, "summary") {
			r.setReadabilityDataTable(table, true)
			continue
		}

		if captions := dom.GetElementsByTagName(table, "caption"); len(captions) > 0 {
			if caption := captions[0]; caption != nil && len(dom.ChildNodes(caption)) > 0 {
				r.setReadabilityDataTable(table, true)
				continue
			}
		}

		hasDataTableDescendantTags := false
		for _, descendantTag := range []string{"col", "colgroup", "tfoot", "thead", "th"} {
			if descendants := dom.GetElementsByTagName(table, descendantTag); len(descendants) > 0 {
				hasDataTableDescendantTags = true
				break
			}
		}

		if hasDataTableDescendantTags {
			r.setReadabilityDataTable(table, true)
			continue
		}

		if len(dom.GetElementsByTagName(table, "table")) > 0 {
			r.setReadabilityDataTable(table, false)
			continue
		}

		rows, columns := r.getRowAndColumnCount(table)
		if rows >= 10 || columns > 4 {
			r.setReadabilityDataTable(table, true)
			continue
		}

		if rows*columns > 10 {
			r.setReadabilityDataTable(table, true)
		}
	}
}
