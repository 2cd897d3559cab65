package nodeapi

// Roles is the full role vocabulary, requested on every read so that the
// positions in a returned node line up with the Index constants below.
// "audioType" appears twice; the device reports it at both positions.
const Roles = "title,icon,type,containerType,containerPlayable,personType,albumType,imageType,audioType,videoType," +
	"epgType,modifiable,disabled,flags,path,value,valueOperation(),edit,mediaData,query," +
	"activate,likeIt,rowsOperation,setRoles,timestamp,id,valueUnit,context,description,longDescription," +
	"search,valueBlob,prePlay,activity,cancel,accept,risky,preferred,httpRequest,encrypted," +
	"encryptedValue,rating,fillParent,autoCompletePath,busyText,sortKey,renderAsButton,doNotTrack,persistentMetaData,releaseDate," +
	"audioType,unknownSize"

// RoleCount is the number of names in Roles.
const RoleCount = 52

// Positions of the roles this client interprets.
const (
	IndexTitle     = 0
	IndexType      = 2
	IndexAudioType = 8
	IndexPath      = 14
	IndexValue     = 15
	IndexEdit      = 17
	IndexMediaData = 18
)

// Role names accepted by setData.
const (
	RoleValue    = "value"
	RoleActivate = "activate"
)
