package users

// Role determines which optional profile fields are meaningful. It is the
// single source of truth for role checks and is immutable after onboarding.
type Role string

const (
	RoleNGO   Role = "ngo"
	RoleBuyer Role = "buyer"
)

// NGOType classifies an NGO's legal registration.
type NGOType string

const (
	NGOTypeTrust    NGOType = "Trust"
	NGOTypeSociety  NGOType = "Society"
	NGOTypeSection8 NGOType = "Section 8 Company"
	NGOTypeOther    NGOType = "Other"
)

// CompanyType classifies a buyer's corporate form.
type CompanyType string

const (
	CompanyTypePrivateLimited CompanyType = "Private Limited"
	CompanyTypePublicLimited  CompanyType = "Public Limited"
	CompanyTypeLLP            CompanyType = "LLP"
	CompanyTypePartnership    CompanyType = "Partnership"
	CompanyTypeOther          CompanyType = "Other"
)

// UserProfile is the onboarded identity of an NGO or buyer. ID is the
// authentication provider's subject id; exactly one profile exists per id,
// written wholesale (upsert), never patched field by field.
type UserProfile struct {
	ID          string `bson:"id" json:"id"`
	Email       string `bson:"email" json:"email"`
	Role        Role   `bson:"role" json:"role"`
	DisplayName string `bson:"displayName" json:"displayName"`

	Address   string `bson:"address,omitempty" json:"address,omitempty"`
	Website   string `bson:"website,omitempty" json:"website,omitempty"`
	KeyPerson string `bson:"keyPerson,omitempty" json:"keyPerson,omitempty"`
	PAN       string `bson:"pan,omitempty" json:"pan,omitempty"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`

	// NGO specific fields
	NGOType            NGOType `bson:"ngoType,omitempty" json:"ngoType,omitempty"`
	RegistrationNumber string  `bson:"registrationNumber,omitempty" json:"registrationNumber,omitempty"`

	// Buyer specific fields
	CompanyType           CompanyType `bson:"companyType,omitempty" json:"companyType,omitempty"`
	CIN                   string      `bson:"cin,omitempty" json:"cin,omitempty"`
	IncorporationDate     string      `bson:"incorporationDate,omitempty" json:"incorporationDate,omitempty"`
	GSTNumber             string      `bson:"gstNumber,omitempty" json:"gstNumber,omitempty"`
	Industry              string      `bson:"industry,omitempty" json:"industry,omitempty"`
	AuthPersonDesignation string      `bson:"authPersonDesignation,omitempty" json:"authPersonDesignation,omitempty"`
	AuthPersonEmail       string      `bson:"authPersonEmail,omitempty" json:"authPersonEmail,omitempty"`
	AuthPersonPhone       string      `bson:"authPersonPhone,omitempty" json:"authPersonPhone,omitempty"`
}
