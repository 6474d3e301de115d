package catalog

// Entry is one row of the static job dataset. It is read-only once loaded.
type Entry struct {
	Domain      string `json:"domain"`
	JobRole     string `json:"job_role"`
	Skills      string `json:"skills"`
	Personality string `json:"personality"`
}
