package drafting

import (
	"strings"

	"github.com/wenhao/disclosure-assistant/internal/cjk"
	"github.com/wenhao/disclosure-assistant/internal/collection"
	"github.com/wenhao/disclosure-assistant/internal/types"
)

// FallbackTitle is used when the answer record carries too little Chinese text
// to derive a title. It is also the anchor line for formatting annotations.
const FallbackTitle = "技术交底书"

// Title derives the draft title from the technical-field and solution answers:
// the first two keyword runs of the field joined with the first three of the
// solution. Either side empty falls back to the generic title.
func Title(record types.AnswerRecord) string {
	fieldWords := cjk.Keywords(record[collection.FieldTechnicalField], 2)
	solutionWords := cjk.Keywords(record[collection.FieldSolution], 3)
	if len(fieldWords) == 0 || len(solutionWords) == 0 {
		return FallbackTitle
	}
	return strings.Join(fieldWords, "") + "技术领域的" + strings.Join(solutionWords, "") + "方法及系统"
}
