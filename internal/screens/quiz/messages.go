package quiz

import "time"

// tutorPollMsg asks the screen to check for a finished tutor reply.
type tutorPollMsg time.Time

// flashClearMsg dismisses the transient status line.
type flashClearMsg struct{}
