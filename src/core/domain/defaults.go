package domain

// MinimumAge is the age in whole years a person must have reached to register.
const MinimumAge = 18

// BirthLayout is the layout of birth dates on the wire and in stored records.
const BirthLayout = "2006-01-02"
