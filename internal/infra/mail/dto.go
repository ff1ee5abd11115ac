package mail

type ProspectEmailData struct {
	FirstName string
	LastName  string
}

type StaffAlertData struct {
	FirstName    string
	LastName     string
	Email        string
	ResumeS3Path string
}

type EmailSender struct {
	Host         string
	Port         int
	User         string
	Password     string
	From         string
	StaffAddress string
}
