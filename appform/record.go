package appform

// Application is one submitted rental application, as collected by the
// application form. Apart from the applicant's name, email, phone and the
// consent flag every field may be empty; rendering always draws the label
// and leaves the value blank.
type Application struct {
	PropertyID int    `json:"propertyId"`
	UserID     int    `json:"userId,omitempty"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`

	DateOfBirth string `json:"dateOfBirth,omitempty"`
	SSNLast4    string `json:"ssnLast4,omitempty"`

	// Combined "street, city, state zip" string from the form.
	CurrentAddress   string `json:"currentAddress,omitempty"`
	MoveInDate       string `json:"moveInDate,omitempty"`
	MoveOutDate      string `json:"moveOutDate,omitempty"`
	ReasonForLeaving string `json:"reasonForLeaving,omitempty"`

	PreviousLandlordName  string `json:"previousLandlordName,omitempty"`
	PreviousLandlordPhone string `json:"previousLandlordPhone,omitempty"`

	EmployerName    string `json:"employerName,omitempty"`
	Position        string `json:"position,omitempty"`
	EmployerAddress string `json:"employerAddress,omitempty"`
	// Monthly gross income in cents. Nil when the applicant left it out.
	MonthlyIncome    *int64 `json:"monthlyIncome,omitempty"`
	EmploymentLength string `json:"employmentLength,omitempty"`
	// Combined "Name - Phone" string; the discrete fields below win when set.
	SupervisorContact      string `json:"supervisorContact,omitempty"`
	SupervisorName         string `json:"supervisorName,omitempty"`
	SupervisorPhone        string `json:"supervisorPhone,omitempty"`
	AdditionalIncome       string `json:"additionalIncome,omitempty"`
	AdditionalIncomeSource string `json:"additionalIncomeSource,omitempty"`

	AdditionalOccupants string `json:"additionalOccupants,omitempty"`
	Pets                string `json:"pets,omitempty"`
	Vehicles            string `json:"vehicles,omitempty"`
	HasPets             *bool  `json:"hasPets,omitempty"`
	HasVehicles         *bool  `json:"hasVehicles,omitempty"`

	EmergencyContactName     string `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone    string `json:"emergencyContactPhone,omitempty"`
	EmergencyContactRelation string `json:"emergencyContactRelation,omitempty"`

	ConsentGiven  bool   `json:"consentGiven"`
	SignatureData string `json:"signatureData,omitempty"`

	IDDocumentURL  string `json:"idDocumentUrl,omitempty"`
	IncomeProofURL string `json:"incomeProofUrl,omitempty"`
}

// Assets holds everything the engine needs byte-resolved before a render
// starts: the engine itself never touches the network or the file system.
// Any member may be nil; missing images are skipped and missing fonts fall
// back to the built-in Helvetica styles.
type Assets struct {
	Logo        []byte
	IDDocument  []byte
	IncomeProof []byte

	BoldFont    []byte
	RegularFont []byte
}
