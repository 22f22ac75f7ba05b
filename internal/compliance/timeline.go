package compliance

// BuildTimeline groups the critical and high priority actions into
// ordered execution phases. Phases with no actions are omitted.
func BuildTimeline(actions []ActionItem, voyageStart *Date) []TimelinePhase {
	timeline := []TimelinePhase{}

	var critical, high []string
	for _, a := range actions {
		switch a.Priority {
		case PriorityCritical:
			critical = append(critical, a.Action)
		case PriorityHigh:
			high = append(high, a.Action)
		}
	}

	if len(critical) > 0 {
		timeline = append(timeline, TimelinePhase{
			Phase:    "Immediate (Before Departure)",
			Actions:  critical,
			Deadline: "Now",
		})
	}

	if len(high) > 0 {
		deadline := "Before voyage"
		if voyageStart != nil {
			deadline = voyageStart.String()
		}
		timeline = append(timeline, TimelinePhase{
			Phase:    "Pre-Voyage",
			Actions:  high,
			Deadline: deadline,
		})
	}

	return timeline
}
