package service

import (
	"github.com/google/uuid"

	"readathon/internal/adapters/sheetrow"
	"readathon/internal/core/flagvocab"
	"readathon/internal/core/fold"
	"readathon/internal/core/parse"
	"readathon/internal/services/resync/domain"

	journaldomain "readathon/internal/services/journal/domain"
	perioddomain "readathon/internal/services/periods/domain"
)

// dedupKey identifies a once-per-period milestone within a run
type dedupKey struct {
	member string
	period string
	kind   journaldomain.AchievementKind
}

// buildBatch turns the fetched row set into journal rows. It never fails: row
// problems either skip the row or degrade a field, and only the counts show.
// Rows must arrive in ascending submission order so the first claim of a
// once-per-period milestone wins
func buildBatch(
	clubID string,
	rows []sheetrow.Raw,
	foldIdx map[string]string,
	periods []perioddomain.Period,
	vocab *flagvocab.Classifier,
) ([]journaldomain.LogEntry, []journaldomain.Achievement, domain.Counts) {
	var (
		logs []journaldomain.LogEntry
		achs []journaldomain.Achievement
		n    domain.Counts
	)
	seen := map[dedupKey]struct{}{}
	n.Fetched = len(rows)

	for _, row := range rows {
		memberID, ok := foldIdx[fold.Fold(row.MemberName)]
		if !ok {
			n.UnknownName++
			continue
		}
		day, err := parse.Day(row.DateToken)
		if err != nil {
			n.BadDate++
			continue
		}

		entry := journaldomain.LogEntry{
			ID:            uuid.NewString(),
			ClubID:        clubID,
			MemberID:      memberID,
			SubmittedAt:   row.SubmittedAt,
			EntryDate:     day,
			CommonMinutes: parse.Minutes(row.CommonHMS),
			OtherMinutes:  parse.Minutes(row.OtherHMS),
			QuoteCommon:   vocab.Has(row.Quotes, flagvocab.QuoteCommon),
			QuoteOther:    vocab.Has(row.Quotes, flagvocab.QuoteOther),
		}

		period, inPeriod := perioddomain.Resolve(day, periods)
		if inPeriod {
			pid := period.ID
			entry.PeriodID = &pid

			for _, a := range detect(row, entry, period, vocab) {
				key := dedupKey{member: a.MemberID, period: a.PeriodID, kind: a.Kind}
				if a.Kind.OncePerPeriod() {
					if _, dup := seen[key]; dup {
						n.Suppressed++
						continue
					}
					seen[key] = struct{}{}
				}
				achs = append(achs, a)
				n.Achievements++
			}
		} else {
			n.NoPeriod++
		}

		logs = append(logs, entry)
		n.Processed++
	}
	return logs, achs, n
}

// detect reads the milestone free-text for one row. Text that matches nothing
// in the vocabulary is ignored rather than guessed at
func detect(
	row sheetrow.Raw,
	entry journaldomain.LogEntry,
	period perioddomain.Period,
	vocab *flagvocab.Classifier,
) []journaldomain.Achievement {
	var out []journaldomain.Achievement
	emit := func(kind journaldomain.AchievementKind, bookID *string) {
		out = append(out, journaldomain.Achievement{
			ID:         uuid.NewString(),
			ClubID:     entry.ClubID,
			MemberID:   entry.MemberID,
			PeriodID:   period.ID,
			Kind:       kind,
			AchievedOn: entry.EntryDate,
			BookID:     bookID,
		})
	}

	if vocab.Has(row.Achievements, flagvocab.FinishedCommon) {
		bookID := period.Book.ID
		emit(journaldomain.KindFinishedCommon, &bookID)
	}
	if vocab.Has(row.Achievements, flagvocab.FinishedOther) {
		emit(journaldomain.KindFinishedOther, nil)
	}
	if vocab.Has(row.Achievements, flagvocab.AttendedDiscussion) {
		emit(journaldomain.KindAttended, nil)
	}
	return out
}
