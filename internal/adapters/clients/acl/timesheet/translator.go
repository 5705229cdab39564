package timesheet

import (
	"github.com/jsamuelsen11/payroo-gateway/internal/domain/timesheet"
)

// ToDomainTimesheet converts a stored backend record. Missing allowances
// become 0 and missing breaks stay nil.
func ToDomainTimesheet(dto *TimesheetDTO) timesheet.Timesheet {
	ts := timesheet.Timesheet{
		ID:          dto.ID,
		EmployeeID:  dto.EmployeeID,
		PeriodStart: timesheet.DateKey(dto.PeriodStart),
		PeriodEnd:   timesheet.DateKey(dto.PeriodEnd),
		Entries:     make([]timesheet.Entry, len(dto.Entries)),
	}
	if dto.Allowances != nil {
		ts.Allowances = *dto.Allowances
	}
	for i, e := range dto.Entries {
		ts.Entries[i] = timesheet.Entry{
			Date:      e.Date,
			StartTime: e.Start,
			EndTime:   e.End,
			BreakMins: e.UnpaidBreakMins,
		}
	}
	return ts
}

// ToDomainTimesheetList converts backend records. A nil list becomes an
// empty slice.
func ToDomainTimesheetList(dtos []TimesheetDTO) []timesheet.Timesheet {
	list := make([]timesheet.Timesheet, len(dtos))
	for i := range dtos {
		list[i] = ToDomainTimesheet(&dtos[i])
	}
	return list
}

// ToTimesheetRequest converts a draft to the POST and PATCH body. The draft
// id travels in the path, never in the body.
func ToTimesheetRequest(d *timesheet.Draft) TimesheetDTO {
	dto := TimesheetDTO{
		EmployeeID:  d.EmployeeID,
		PeriodStart: d.PeriodStart,
		PeriodEnd:   d.PeriodEnd,
		Allowances:  d.Allowances,
		Entries:     make([]EntryDTO, len(d.Entries)),
	}
	for i, e := range d.Entries {
		dto.Entries[i] = EntryDTO{
			Date:            e.Date,
			Start:           e.StartTime,
			End:             e.EndTime,
			UnpaidBreakMins: e.BreakMins,
		}
	}
	return dto
}
