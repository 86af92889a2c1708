package review

// Segment is a maximal contiguous run of pages within one day's block.
type Segment struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Entry is one day's assignment in a generated schedule. Entries are
// derived on every read and never persisted.
type Entry struct {
	DayName   string    `json:"dayName"`
	DayKey    string    `json:"dayKey"`
	StartPage int       `json:"startPage"`
	EndPage   int       `json:"endPage"`
	PageCount int       `json:"pageCount"`
	Segments  []Segment `json:"segments"`
}

// Generate partitions the flattened page sequence across a cycle of
// the given length, starting on startDay. Every day but the last gets
// ceil(total/days) pages; the last day absorbs the remainder.
//
// When earlier days consume the whole sequence before the nominal last
// day, generation stops and the schedule contains fewer than days
// entries. That shrinking is long-standing observed behavior and is
// kept deliberately.
//
// Generate is a pure function of its inputs: identical ranges, day
// count and start day always yield an identical schedule.
func Generate(ranges []Range, days int, startDay Weekday) ([]Entry, error) {
	if len(ranges) == 0 || days <= 0 {
		return []Entry{}, nil
	}

	pages, err := PageSequence(ranges)
	if err != nil {
		return nil, err
	}
	total := len(pages)
	if total == 0 {
		return []Entry{}, nil
	}

	dailyAmount := (total + days - 1) / days
	schedule := make([]Entry, 0, days)

	pageIndex := 0
	for d := 0; d < days; d++ {
		day := startDay.Next(d)

		var pagesForDay int
		if d == days-1 {
			pagesForDay = total - pageIndex
		} else {
			pagesForDay = dailyAmount
			if rest := total - pageIndex; rest < pagesForDay {
				pagesForDay = rest
			}
		}
		if pagesForDay <= 0 {
			break
		}

		block := pages[pageIndex : pageIndex+pagesForDay]
		schedule = append(schedule, Entry{
			DayName:   day.Name(),
			DayKey:    day.Key(),
			StartPage: block[0],
			EndPage:   block[len(block)-1],
			PageCount: pagesForDay,
			Segments:  segments(block),
		})
		pageIndex += pagesForDay
	}

	return schedule, nil
}

// segments splits a contiguous slice of the page sequence at each
// break in numeric consecutiveness.
func segments(block []int) []Segment {
	segs := []Segment{}
	segStart, segPrev := block[0], block[0]
	for _, p := range block[1:] {
		if p != segPrev+1 {
			segs = append(segs, Segment{Start: segStart, End: segPrev})
			segStart = p
		}
		segPrev = p
	}
	return append(segs, Segment{Start: segStart, End: segPrev})
}
