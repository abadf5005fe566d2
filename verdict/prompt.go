package verdict

import (
	"fmt"
	"strings"

	"github.com/Aalzard/DRUNKPENGUINS/rating"
)

// ratingSummary renders every present rating as prose input for the model,
// in directory order so the prompt is stable. Absent ratings contribute
// nothing. Returns "" when nobody has rated the game.
func ratingSummary(game rating.Game, directory rating.Directory, scale rating.Scale) string {
	var parts []string
	for _, u := range directory {
		r, ok := game.Ratings[u.ID]
		if !ok {
			continue
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%s gave it a total of %d/%d.\n", u.Name, r.TotalScore, scale.MaxTotal())
		for _, c := range scale {
			cr := rating.Breakdown(r, c)
			comment := cr.Comment
			if comment == "" {
				comment = "No comment"
			}
			fmt.Fprintf(&b, "  - %s: %d/%d. Comment: %q\n", c, cr.Score, rating.MaxScore, comment)
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n")
}

func verdictPrompt(gameName, summary string) string {
	return fmt.Sprintf(`You are a sarcastic, knowledgeable gaming journalist AI for a group of 4 friends.
Analyze the following reviews for the game "%s".

Here is the data:
%s

Provide a "Squad Verdict". Keep it under 100 words.
Highlight where they agreed or disagreed. Be witty.
Format as plain text.`, gameName, summary)
}

func describePrompt(gameName string) string {
	return fmt.Sprintf("Write a 1-sentence hype summary for the video game %q. Do not include quotes.", gameName)
}
