package entity

import "time"

// CustomerPreferences preferencias de compra del cliente (documento embebido).
type CustomerPreferences struct {
	PreferredCategories    []string `bson:"preferred_categories" json:"preferredCategories"`
	PreferredStores        []int    `bson:"preferred_stores" json:"preferredStores"`
	NewsletterSubscribed   bool     `bson:"newsletter_subscribed" json:"newsletterSubscribed"`
	CommunicationByEmail   bool     `bson:"communication_email" json:"communicationByEmail"`
	CommunicationBySMS     bool     `bson:"communication_sms" json:"communicationBySMS"`
	CommunicationByPush    bool     `bson:"communication_push" json:"communicationByPush"`
}

// Customer es el documento de cliente en MongoDB, vinculado al cliente
// relacional por SQLCustomerID (único). Se crea de forma perezosa la primera
// vez que una reserva referencia un id externo nuevo.
type Customer struct {
	ID            string              `bson:"_id" json:"customerId"`
	SQLCustomerID int                 `bson:"sql_customer_id" json:"sqlCustomerId"`
	FirstName     string              `bson:"first_name" json:"firstName"`
	LastName      string              `bson:"last_name" json:"lastName"`
	Email         string              `bson:"email" json:"email"`
	Phone         string              `bson:"phone,omitempty" json:"phone,omitempty"`
	Preferences   CustomerPreferences `bson:"preferences" json:"preferences"`
	LastActivity  time.Time           `bson:"last_activity" json:"lastActivity"`
	CreatedAt     time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updated_at" json:"updatedAt"`
}
