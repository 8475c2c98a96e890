package models

type Application struct {
	BaseModel
	// JobID is a weak reference: the job may be deleted after submission and
	// the application record stays behind. Readers must tolerate the dangle.
	JobID       string            `gorm:"not null;index;uniqueIndex:idx_job_applicant"`
	ApplicantID string            `gorm:"not null;index;uniqueIndex:idx_job_applicant"`
	Role        string            // free text, declared by the jobseeker
	Experience  string            // free text, e.g. "3 years", "5+", "Fresher"
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'applied'"`
	Note        string            // employer-private annotation
	CV          string            // stored filename, optional

	Applicant *User `gorm:"foreignKey:ApplicantID"`
	Job       *Job  `gorm:"foreignKey:JobID"`
}
