package schedule

// ClassRecord is one schedule entry as returned by the booking platform.
// Dates and clock times are civil values in the studio's local timezone
// (US Central); they carry no offset of their own.
type ClassRecord struct {
	ID              string `json:"id"`
	ClassID         string `json:"classId"`
	Name            string `json:"name"`
	Location        string `json:"location"`
	CompanyName     string `json:"companyName"`
	ArrivalDate     string `json:"arrivalDate"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Availability    string `json:"availability"`
	Description     string `json:"description"`
	DescriptionHTML string `json:"descriptionHtml"`
}

// Class is a normalized schedule entry: the upstream passthrough fields plus
// UTC instants and display renderings derived from the civil date and times.
type Class struct {
	ID               string `json:"id,omitempty"`
	ClassID          string `json:"classId,omitempty"`
	Name             string `json:"name"`
	Location         string `json:"location"`
	Date             string `json:"date"`
	DayShort         string `json:"dayShort"`
	DayFull          string `json:"dayFull"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	StartTimeDisplay string `json:"startTimeDisplay"`
	EndTimeDisplay   string `json:"endTimeDisplay"`
	UTCStart         string `json:"utcStart"`
	UTCEnd           string `json:"utcEnd"`
	UTCStartShort    string `json:"utcStartShort"`
	UTCEndShort      string `json:"utcEndShort"`
	Availability     string `json:"availability,omitempty"`
	Description      string `json:"description,omitempty"`
	DescriptionHTML  string `json:"descriptionHtml,omitempty"`
}

// DayGroup buckets the classes that fall on one local calendar date.
type DayGroup struct {
	Date     string  `json:"date"`
	DayShort string  `json:"dayShort"`
	DayFull  string  `json:"dayFull"`
	Classes  []Class `json:"classes"`
}
