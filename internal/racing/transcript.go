package racing

import "strings"

// Transcript text.
const (
	TranscriptHeader = "실행 결과"
	WinnerSuffix     = "가 최종 우승했습니다."
	WinnerSeparator  = ", "
	DistanceMark     = "-"
)

// TranscriptHeaderLines is the number of lines a transcript carries besides
// the per-round blocks: the header, the blank line before the winner line,
// and the winner line itself.
const TranscriptHeaderLines = 3

// FormatTranscript renders the result text:
//
//	실행 결과
//
//	pobi : --
//	crong : -
//
//	pobi가 최종 우승했습니다.
//
// One blank-prefixed block per round, then a blank line and the winner line.
// No trailing newline. Pure function of its inputs.
func FormatTranscript(rounds []RoundSnapshot, winners []string) string {
	var b strings.Builder
	b.WriteString(TranscriptHeader)

	for _, round := range rounds {
		b.WriteString("\n")
		for _, p := range round.Positions {
			b.WriteString("\n")
			b.WriteString(FormatPosition(p))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(FormatWinners(winners))
	return b.String()
}

// FormatPosition renders one car line: "<name> : " followed by one mark per unit.
func FormatPosition(p Position) string {
	return p.Name + " : " + strings.Repeat(DistanceMark, p.Distance)
}

// FormatWinners renders the final announcement line.
func FormatWinners(names []string) string {
	return strings.Join(names, WinnerSeparator) + WinnerSuffix
}

// ExpectedLineCount is the number of lines a transcript for the given roster
// size and round count splits into.
func ExpectedLineCount(cars, rounds int) int {
	return rounds*(cars+1) + TranscriptHeaderLines
}
