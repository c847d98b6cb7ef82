// Package spy extracts normalized bibliographic metadata from web pages.
// Given a URL it resolves a page title, site name, authors, description,
// thumbnail and main body text by searching the competing metadata
// standards a page may carry (OpenGraph, Twitter Cards, JSON-LD, Microdata,
// RDFa, microformats2, Dublin Core, web app manifests, oEmbed).
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, readability/).
package spy
