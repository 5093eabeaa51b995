package models

import "strings"

// AdminUsername est le nom réservé qui donne accès au panneau admin
const AdminUsername = "admin"

// Credentials associe un nom d'utilisateur à son mot de passe (hashé)
type Credentials map[string]string

// IsAdmin compare sans tenir compte de la casse, contrairement au login
// qui exige une correspondance exacte du nom.
func IsAdmin(username string) bool {
	return username != "" && strings.EqualFold(username, AdminUsername)
}
